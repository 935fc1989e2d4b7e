package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rcliao/recruit-tracker/internal/cli"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

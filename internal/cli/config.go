package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration file",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			data, err := cfg.Marshal()
			if err != nil {
				exitErr("config show", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Run: func(cmd *cobra.Command, args []string) {
			if err := cfg.Save(configPath); err != nil {
				exitErr("config init", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"file":%q}`+"\n", configPath)
		},
	}

	configCmd.AddCommand(showCmd, initCmd)
	RootCmd.AddCommand(configCmd)
}

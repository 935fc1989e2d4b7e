package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/recruit-tracker/internal/store"
)

func init() {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent revisions of a stored key",
		Run:   runHistory,
	}
	historyCmd.Flags().StringP("key", "k", store.KeyProfile, "Stored key")
	historyCmd.Flags().IntP("limit", "l", 10, "Max results")

	RootCmd.AddCommand(statsCmd, historyCmd)
}

func runStats(cmd *cobra.Command, args []string) {
	kv, err := store.NewSQLiteKV(cfg.DBPath)
	if err != nil {
		exitErr("open store", err)
	}
	defer kv.Close()

	stats, err := kv.Stats(cmd.Context(), cfg.DBPath)
	if err != nil {
		exitErr("stats", err)
	}

	printJSON(cmd, stats)
}

func runHistory(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")
	limit, _ := cmd.Flags().GetInt("limit")

	kv, err := store.NewSQLiteKV(cfg.DBPath)
	if err != nil {
		exitErr("open store", err)
	}
	defer kv.Close()

	revs, err := kv.History(cmd.Context(), store.HistoryParams{Key: key, Limit: limit})
	if err != nil {
		exitErr("history", err)
	}

	printJSON(cmd, revs)
}

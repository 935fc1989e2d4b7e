// Package cli implements the recruit-tracker CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rcliao/recruit-tracker/internal/config"
	"github.com/rcliao/recruit-tracker/internal/store"
	"github.com/rcliao/recruit-tracker/internal/tracker"
)

var (
	dbPath     string
	configPath string
	formatFlag string
	verbose    bool

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "recruit-tracker",
	Short: "Track your college recruiting from the terminal",
	Long: "A single-user recruiting tracker: profile, school list, outreach log, " +
		"reel plan and a scripted assistant. State lives in a local SQLite file.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if dbPath != "" {
			cfg.DBPath = dbPath
		}

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zapcore.WarnLevel
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $RECRUIT_TRACKER_DB or ~/.recruit-tracker/tracker.db)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Config file")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json, text or markdown")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

// openTracker opens the store and loads the tracker from it. Callers close
// the returned store.
func openTracker(cmd *cobra.Command) (*tracker.Tracker, *store.SQLiteKV) {
	kv, err := store.NewSQLiteKV(cfg.DBPath)
	if err != nil {
		exitErr("open store", err)
	}
	t := tracker.New(cmd.Context(), kv,
		tracker.WithLogger(logger),
		tracker.WithDefaults(cfg.Defaults.Settings()),
	)
	return t, kv
}

func printJSON(cmd *cobra.Command, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func textOutput() bool {
	return formatFlag == "text"
}

// unchanged reports a silently ignored mutation.
func unchanged(cmd *cobra.Command, reason string) {
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":false,"reason":%q}`+"\n", reason)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

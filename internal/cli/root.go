// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"trade-journal/internal/config"
	apperrors "trade-journal/internal/errors"
	"trade-journal/internal/journal"
	"trade-journal/internal/logging"
	"trade-journal/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Journal *journal.Store
	KV      store.KV
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Open the local store. When the database cannot be opened the
	// session falls back to an in-memory store so reads and exports
	// keep working; nothing from that session survives the process.
	if err := config.EnsureConfigDir(filepath.Dir(cfg.Storage.Path)); err != nil {
		logger.Warn().Err(err).Msg("Failed to create data directory")
	}
	kv, err := store.NewSQLiteKV(cfg.Storage.Path)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.Storage.Path).
			Msg("Failed to open local store, changes will not be saved")
		app.KV = store.NewMemoryKV()
	} else {
		app.KV = kv
		logger.Debug().Str("path", cfg.Storage.Path).Msg("Local store opened")
	}

	app.Journal = journal.Open(app.KV, logger)

	rootCmd := &cobra.Command{
		Use:   "journal",
		Short: "Trading journal - log trades by week and track performance",
		Long: `Trading journal is a single-user CLI for logging trades grouped by week.

It derives win/loss statistics and cumulative performance from the logged
trades and exports reports as CSV or a rendered document. All state lives
in a local database.

Use 'journal help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/trade-journal)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	addWeekCommands(rootCmd, app)
	addTradeCommands(rootCmd, app)
	addStatsCommands(rootCmd, app)
	addExportCommands(rootCmd, app)
	addCapitalCommands(rootCmd, app)
	addSettingsCommands(rootCmd, app)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Trading Journal v%s\n", Version)
			}
		},
	}
}

// reportMutation surfaces the result of a store mutation: a persistence
// failure is a warning (the in-memory change stuck), anything else is a
// real error.
func reportMutation(output *Output, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsPersist(err) {
		output.Warning("Saved in memory only: %v", err)
		return nil
	}
	return err
}

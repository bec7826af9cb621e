package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/ogulcanaydogan/billable-hours/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgFile string

// now is the reference time for relative dates and the current cycle.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "bht",
	Short: "Billable Hours Tracker - hour entry, working days and billing cycles",
	Long: `Billable Hours Tracker checks and formats hour entries (8, 8.5 or 8:30),
counts working days between dates, reports monthly billing cycles (25th to
24th) with goal progress, and totals YAML timesheets.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.bht/config.yaml)")
}

// loadConfig loads the configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger creates a structured logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

// setup loads config and builds the logger every command needs.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(cfg), nil
}

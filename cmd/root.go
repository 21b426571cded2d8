package cmd

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/aidan2b/data-describer/internal/config"
	"github.com/aidan2b/data-describer/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags (override config)
	cfgFile   string
	debug     bool
	logLevel  string
	logFormat string

	// Loaded configuration
	cfg    *cfgpkg.Global
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "describe",
	Short: "Per-column descriptive statistics for delimited text tables",
	Long: `describe reads a comma-delimited table (header row first) and reports, per column,
numeric moments and quartiles for numeric columns and frequency, uniqueness and length
statistics for text columns.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.data-describer/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging (same as --log-level debug)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text|json (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{MaxRows: 1_000_000, MissingTokens: []string{""}, Delimiter: ",", OutputFormat: "text"}
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if f.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	logger = logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)
}

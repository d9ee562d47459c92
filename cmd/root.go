// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"acexspf/internal/config"
	"acexspf/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagConfig   string
	flagDebug    bool
	flagTimeout  time.Duration
	flagVariable string
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "acexspf",
	Short: "Turn AceStream channel listings into playlists",
	Long: `acexspf scrapes a page that publishes AceStream channels in an embedded
linksData literal and writes them out as an XSPF (or M3U) playlist.
It can also serve the same operations over HTTP.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command. Interrupts cancel in-flight work.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: $XDG_CONFIG_HOME/acexspf/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Fetch timeout (default: 20s)")
	rootCmd.PersistentFlags().StringVar(&flagVariable, "variable", "", "Name of the script variable holding the links (default: linksData)")

	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if flagConfig != "" {
		path, perr := config.ExpandPath(flagConfig)
		if perr != nil {
			return perr
		}
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagTimeout > 0 {
		cfg.Timeout = config.Duration{Duration: flagTimeout}
	}
	if flagVariable != "" {
		cfg.Variable = flagVariable
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configureLogging(cfg)
	return nil
}

// configureLogging applies the configured level. --debug and debug = true
// always win; otherwise LOG_LEVEL or DEBUG in the environment take
// precedence over the file.
func configureLogging(c *config.Config) {
	logging.SetOutput(os.Stderr)
	if c.Debug {
		logging.SetLevel(logging.LevelDebug)
		return
	}
	if os.Getenv("LOG_LEVEL") != "" || os.Getenv("DEBUG") != "" {
		return
	}
	if lvl, err := logging.ParseLevel(c.LogLevel); err == nil {
		logging.SetLevel(lvl)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "acexspf %s\n", Version)
	},
}

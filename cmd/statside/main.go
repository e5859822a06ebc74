package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/statside/statside/internal/config"
	"github.com/statside/statside/internal/fetcher"
)

var (
	cfgFile     string
	verbose     bool
	fetcherType string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statside",
		Short: "statside — college sports statistics and recruiting data",
		Long: `statside retrieves college sports data from two upstream sources:
the sports-media JSON endpoints (scoreboards, schedules, standings, box
scores, play-by-play, poll rankings, teams, rosters) and the recruiting
site's HTML pages (player rankings, team rankings, commit lists) across
football, men's basketball, and women's basketball.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&fetcherType, "fetcher", "", "fetcher type override (http or browser)")

	rootCmd.AddCommand(recruitCmd())
	rootCmd.AddCommand(statsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration honoring the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if fetcherType != "" {
		cfg.Fetcher.Type = fetcherType
	}
	return cfg, nil
}

// setupLogger builds the process logger from config.
func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	out := os.Stderr
	if cfg.Logging.Output == "stdout" {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}

// newFetcher builds the configured fetcher.
func newFetcher(cfg *config.Config, logger *slog.Logger) (fetcher.Fetcher, error) {
	switch cfg.Fetcher.Type {
	case "browser":
		return fetcher.NewBrowserFetcher(cfg, logger)
	default:
		return fetcher.NewHTTPFetcher(cfg, logger)
	}
}

// printJSON writes a value to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

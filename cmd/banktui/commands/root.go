package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"banktui/internal/client"
	"banktui/internal/config"
	"banktui/internal/log"
)

var (
	// Global flags
	endpoint   string
	verbose    bool
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "banktui",
	Short: "banktui - terminal client for the banking GraphQL backend",
	Long: `banktui is a terminal client for the banking demo backend.

It renders accounts and transactions fetched over GraphQL, creates accounts,
and records deposits and withdrawals. Run it as an interactive dashboard or
through non-interactive subcommands.

All state lives in the backend; banktui keeps only an in-memory snapshot of
the latest responses.`,
	Version: "1.2.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "GraphQL endpoint URL (overrides BANKTUI_ENDPOINT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// loadConfig merges the environment configuration with the global flags.
func loadConfig() *config.Config {
	cfg := config.Load()
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	cfg.Verbose = verbose
	return cfg
}

// newLogger builds the CLI logger writing to stderr.
func newLogger(cfg *config.Config) *log.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return log.New(log.Config{Level: level, Component: log.ComponentApp, Writer: os.Stderr})
}

// newClient builds the shared backend client for one command invocation.
func newClient() (*client.Client, *log.Logger, error) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	c, err := client.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return c, logger, nil
}

// parseDecimalFlag parses a decimal flag value; a comma separator is
// accepted.
func parseDecimalFlag(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}

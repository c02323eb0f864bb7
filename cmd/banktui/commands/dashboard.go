package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"banktui/cmd/banktui/tui"
	"banktui/internal/client"
	"banktui/internal/log"
)

// dashboardCmd launches the interactive dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open the interactive dashboard: account list, account creator,
transaction form and transaction list, visible at once.

The terminal owns stdout while the dashboard runs; set BANKTUI_LOG_FILE to
capture logs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard() error {
	cfg := loadConfig()

	logger := log.Discard()
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		logger = log.New(log.Config{Level: level, Component: log.ComponentTUI, Writer: f})
	}

	c, err := client.New(cfg, logger)
	if err != nil {
		return err
	}
	return tui.Run(c, logger)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"banktui/cmd/banktui/output"
	"banktui/internal/contract"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show account and transaction statistics",
	Long: `Fetch the backend's aggregate statistics: balance count/sum/average
across accounts, and transaction count with per-kind sums. The two reads run
concurrently.

Examples:
  banktui stats
  banktui stats --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats() error {
	c, _, err := newClient()
	if err != nil {
		return err
	}

	var (
		accountStats     contract.AccountStats
		transactionStats contract.TransactionStats
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		accountStats, err = c.AccountStats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactionStats, err = c.TransactionStats(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(map[string]any{
			"accounts":     accountStats,
			"transactions": transactionStats,
		})
	}

	output.Primary("Comptes")
	output.Info("Nombre: %d", accountStats.Count)
	output.Info("Somme des soldes: %s", contract.FormatAmount(accountStats.Sum))
	output.Info("Solde moyen: %s", contract.FormatAmount(accountStats.Average))

	output.Primary("Transactions")
	output.Info("Nombre: %d", transactionStats.Count)
	output.Info("Total dépôts: %s", contract.FormatAmount(transactionStats.SumDeposits))
	output.Info("Total retraits: %s", contract.FormatAmount(transactionStats.SumWithdrawals))
	return nil
}

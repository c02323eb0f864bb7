package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"banktui/cmd/banktui/output"
	"banktui/internal/contract"
)

var (
	// Transactions flags
	txAccountID string
	txKind      string
	txAmount    string
)

// txCmd represents the tx command
var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Work with transactions",
	Long: `Work with backend transactions.

Subcommands:
  list    - List transactions, all or for one account
  record  - Record a deposit or withdrawal`,
}

// txListCmd lists transactions
var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Long: `List every transaction, or only those of one account.

Examples:
  banktui tx list
  banktui tx list --account 1
  banktui tx list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTxList()
	},
}

// txRecordCmd records a transaction
var txRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a deposit or withdrawal",
	Long: `Record a transaction against one account. The response carries the
account with its balance already adjusted.

Examples:
  banktui tx record --account 1 --kind deposit --amount 500
  banktui tx record --account 1 --kind withdrawal --amount 25.50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTxRecord()
	},
}

func init() {
	txListCmd.Flags().StringVar(&txAccountID, "account", "", "Only list transactions of this account")
	txRecordCmd.Flags().StringVar(&txAccountID, "account", "", "Account id (required)")
	txRecordCmd.Flags().StringVar(&txKind, "kind", string(contract.KindDeposit), "Transaction kind (deposit|withdrawal)")
	txRecordCmd.Flags().StringVar(&txAmount, "amount", "", "Amount (required, > 0)")
	_ = txRecordCmd.MarkFlagRequired("account")
	_ = txRecordCmd.MarkFlagRequired("amount")

	txCmd.AddCommand(txListCmd)
	txCmd.AddCommand(txRecordCmd)
	rootCmd.AddCommand(txCmd)
}

func runTxList() error {
	c, _, err := newClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	var transactions []contract.Transaction
	if txAccountID != "" {
		transactions, err = c.AccountTransactions(ctx, txAccountID)
	} else {
		transactions, err = c.ListTransactions(ctx)
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(transactions)
	}
	printTransactions(transactions)
	return nil
}

func printTransactions(transactions []contract.Transaction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tMONTANT\tCOMPTE\tSOLDE")
	for _, tx := range transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			tx.Date, tx.Kind.Label(), contract.FormatAmount(tx.Amount),
			tx.Account.ID, contract.FormatAmount(tx.Account.Balance))
	}
	w.Flush()
	output.Muted("Total: %d transaction(s)", len(transactions))
}

func runTxRecord() error {
	c, _, err := newClient()
	if err != nil {
		return err
	}
	amount, err := parseDecimalFlag(txAmount)
	if err != nil {
		return contract.ErrInvalidAmount
	}
	kind, err := contract.ParseTransactionKind(txKind)
	if err != nil {
		return err
	}
	tx, err := c.RecordTransaction(context.Background(), contract.RecordTransactionInput{
		Amount:    amount,
		AccountID: txAccountID,
		Kind:      kind,
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return output.JSON(tx)
	}
	output.Success("Transaction enregistrée: %s (%s %s)", tx.ID, tx.Kind.Label(), contract.FormatAmount(tx.Amount))
	output.Info("Nouveau solde du compte %s: %s", tx.Account.ID, contract.FormatAmount(tx.Account.Balance))
	return nil
}

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
	// Accounts flags
	accountKind   string
	createBalance string
	createKind    string
)

// accountsCmd represents the accounts command
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Work with accounts",
	Long: `Work with backend accounts.

Subcommands:
  list    - List accounts, optionally by kind
  get     - Show one account by id
  create  - Create an account
  delete  - Delete an account`,
}

// accountsListCmd lists accounts
var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Long: `List every account, or only those of one kind.

Examples:
  banktui accounts list
  banktui accounts list --kind savings
  banktui accounts list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAccountsList()
	},
}

// accountsGetCmd shows one account
var accountsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one account by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAccountsGet(args[0])
	},
}

// accountsCreateCmd creates an account
var accountsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	Long: `Create an account with an initial balance and a kind.

Examples:
  banktui accounts create --balance 1500.50 --kind current
  banktui accounts create --balance 0 --kind savings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAccountsCreate()
	},
}

// accountsDeleteCmd deletes an account
var accountsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAccountsDelete(args[0])
	},
}

func init() {
	accountsListCmd.Flags().StringVar(&accountKind, "kind", "", "Only list accounts of this kind (current|savings)")
	accountsCreateCmd.Flags().StringVar(&createBalance, "balance", "", "Initial balance (required, >= 0)")
	accountsCreateCmd.Flags().StringVar(&createKind, "kind", string(contract.KindCurrent), "Account kind (current|savings)")
	_ = accountsCreateCmd.MarkFlagRequired("balance")

	accountsCmd.AddCommand(accountsListCmd)
	accountsCmd.AddCommand(accountsGetCmd)
	accountsCmd.AddCommand(accountsCreateCmd)
	accountsCmd.AddCommand(accountsDeleteCmd)
	rootCmd.AddCommand(accountsCmd)
}

func runAccountsList() error {
	c, _, err := newClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	var accounts []contract.Account
	if accountKind != "" {
		kind, err := contract.ParseAccountKind(accountKind)
		if err != nil {
			return err
		}
		accounts, err = c.AccountsByKind(ctx, kind)
		if err != nil {
			return err
		}
	} else {
		accounts, err = c.ListAccounts(ctx)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		return output.JSON(accounts)
	}
	printAccounts(accounts)
	return nil
}

func printAccounts(accounts []contract.Account) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSOLDE\tCRÉÉ LE")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Kind.Label(), contract.FormatAmount(a.Balance), a.CreatedAt)
	}
	w.Flush()
	output.Muted("Total: %d compte(s)", len(accounts))
}

func runAccountsGet(id string) error {
	c, _, err := newClient()
	if err != nil {
		return err
	}
	account, err := c.Account(context.Background(), id)
	if err != nil {
		return err
	}
	if jsonOutput {
		return output.JSON(account)
	}
	output.Primary("Compte %s", account.ID)
	output.Info("Type: %s", account.Kind.Label())
	output.Info("Solde: %s", contract.FormatAmount(account.Balance))
	output.Info("Créé le: %s", account.CreatedAt)
	return nil
}

func runAccountsCreate() error {
	c, _, err := newClient()
	if err != nil {
		return err
	}
	balance, err := parseDecimalFlag(createBalance)
	if err != nil {
		return contract.ErrInvalidBalance
	}
	kind, err := contract.ParseAccountKind(createKind)
	if err != nil {
		return err
	}
	account, err := c.CreateAccount(context.Background(), contract.CreateAccountInput{
		Balance: balance,
		Kind:    kind,
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return output.JSON(account)
	}
	output.Success("Compte créé: %s (%s, %s)", account.ID, account.Kind.Label(), contract.FormatAmount(account.Balance))
	return nil
}

func runAccountsDelete(id string) error {
	c, _, err := newClient()
	if err != nil {
		return err
	}
	ok, err := c.DeleteAccount(context.Background(), id)
	if err != nil {
		return err
	}
	if !ok {
		output.Error("Compte %s introuvable", id)
		return nil
	}
	output.Success("Compte %s supprimé", id)
	return nil
}

package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"banktui/internal/client"
	"banktui/internal/contract"
)

// Messages exchanged between the async commands and the panes. Each read or
// write operation settles into exactly one of these.
type accountsLoadedMsg struct {
	accounts []contract.Account
	err      error
}

type transactionsLoadedMsg struct {
	transactions []contract.Transaction
	err          error
}

type accountCreatedMsg struct {
	account contract.Account
	err     error
}

type transactionRecordedMsg struct {
	transaction contract.Transaction
	err         error
}

// Commands wrapping the client calls. Each runs off the UI loop and resumes
// the initiating pane via its message.
func loadAccountsCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		accounts, err := c.ListAccounts(context.Background())
		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

func loadTransactionsCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		transactions, err := c.ListTransactions(context.Background())
		return transactionsLoadedMsg{transactions: transactions, err: err}
	}
}

func createAccountCmd(c *client.Client, in contract.CreateAccountInput) tea.Cmd {
	return func() tea.Msg {
		account, err := c.CreateAccount(context.Background(), in)
		return accountCreatedMsg{account: account, err: err}
	}
}

func recordTransactionCmd(c *client.Client, in contract.RecordTransactionInput) tea.Cmd {
	return func() tea.Msg {
		transaction, err := c.RecordTransaction(context.Background(), in)
		return transactionRecordedMsg{transaction: transaction, err: err}
	}
}

// noticeKind classifies the inline notice a form surfaces after a submit.
type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeSuccess
	noticeError
)

// notice is the transient message a form shows below its fields. It clears
// on the next edit.
type notice struct {
	kind noticeKind
	text string
}

func successNotice(text string) notice { return notice{kind: noticeSuccess, text: text} }
func errorNotice(text string) notice   { return notice{kind: noticeError, text: text} }

func (n notice) render() string {
	switch n.kind {
	case noticeSuccess:
		return successStyle.Render("✓ " + n.text)
	case noticeError:
		return dangerStyle.Render("✗ " + n.text)
	}
	return ""
}

// kindSelector is a two-option toggle (account kind, transaction kind).
type kindSelector struct {
	labels   [2]string
	selected int
}

func newKindSelector(first, second string) kindSelector {
	return kindSelector{labels: [2]string{first, second}}
}

func (s *kindSelector) next()  { s.selected = (s.selected + 1) % 2 }
func (s *kindSelector) reset() { s.selected = 0 }

func (s kindSelector) view() string {
	var b strings.Builder
	for i, label := range s.labels {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == s.selected {
			b.WriteString(activeButtonStyle.Render(label))
		} else {
			b.WriteString(inactiveButtonStyle.Render(label))
		}
	}
	return b.String()
}

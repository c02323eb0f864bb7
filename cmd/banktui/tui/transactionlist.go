package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"banktui/internal/client"
	"banktui/internal/contract"
)

// TransactionList renders every transaction with a count footer and a
// client-side running net total (deposits minus withdrawals). Same
// three-state machine as AccountList.
type TransactionList struct {
	client       *client.Client
	state        readState
	errText      string
	transactions []contract.Transaction
	netTotal     decimal.Decimal
	table        table.Model
	spinner      spinner.Model
	focused      bool
	width        int
}

// NewTransactionList builds the pane in its loading state.
func NewTransactionList(c *client.Client) TransactionList {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle

	t := table.New(
		table.WithColumns(transactionColumns(64)),
		table.WithHeight(6),
	)

	return TransactionList{
		client:  c,
		state:   stateLoading,
		table:   t,
		spinner: sp,
	}
}

func transactionColumns(width int) []table.Column {
	col := width / 5
	if col < 6 {
		col = 6
	}
	return []table.Column{
		{Title: "Date", Width: col},
		{Title: "Type", Width: col},
		{Title: "Montant", Width: col},
		{Title: "Compte", Width: col},
		{Title: "Solde", Width: col},
	}
}

// Init issues the initial read.
func (m TransactionList) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadTransactionsCmd(m.client))
}

// Refresh re-issues the read exactly once and restarts at loading.
func (m TransactionList) Refresh() (TransactionList, tea.Cmd) {
	m.state = stateLoading
	return m, tea.Batch(m.spinner.Tick, loadTransactionsCmd(m.client))
}

// SetSize resizes the pane content area.
func (m TransactionList) SetSize(width, height int) TransactionList {
	m.width = width
	m.table.SetColumns(transactionColumns(width))
	if height > 5 {
		m.table.SetHeight(height - 4)
	}
	return m
}

// Focus marks the pane as the keyboard target.
func (m TransactionList) Focus(focused bool) TransactionList {
	m.focused = focused
	if focused {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
	return m
}

// Update handles messages for the pane.
func (m TransactionList) Update(msg tea.Msg) (TransactionList, tea.Cmd) {
	switch msg := msg.(type) {
	case transactionsLoadedMsg:
		if msg.err != nil {
			m.state = stateFailed
			m.errText = msg.err.Error()
			return m, nil
		}
		m.state = stateReady
		m.errText = ""
		m.transactions = msg.transactions
		m.netTotal = decimal.Zero
		rows := make([]table.Row, len(msg.transactions))
		for i, tx := range msg.transactions {
			m.netTotal = m.netTotal.Add(tx.Signed())
			amount := contract.FormatAmount(tx.Amount)
			if tx.Kind == contract.KindWithdrawal {
				amount = "-" + amount
			}
			rows[i] = table.Row{
				tx.Date.String(),
				tx.Kind.Label(),
				amount,
				tx.Account.ID,
				contract.FormatAmount(tx.Account.Balance),
			}
		}
		m.table.SetRows(rows)
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if msg.String() == "r" {
			return m.Refresh()
		}
		if m.state == stateReady {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View renders the pane according to its state.
func (m TransactionList) View() string {
	title := titleStyle.Render("Transactions")

	switch m.state {
	case stateLoading:
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			m.spinner.View()+mutedStyle.Render(" Chargement des transactions..."),
		)
	case stateFailed:
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			dangerStyle.Render(m.errText),
			helpStyle.Render(FormatKey("r", "réessayer")),
		)
	}

	footer := mutedStyle.Render(fmt.Sprintf("Total: %d transaction(s)", len(m.transactions))) +
		mutedStyle.Render(" • Net: ") + infoStyle.Render(contract.FormatAmount(m.netTotal))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.table.View(),
		footer,
	)
}

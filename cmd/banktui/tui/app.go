package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"banktui/internal/client"
	"banktui/internal/contract"
	"banktui/internal/log"
)

// Pane indexes, in tab order.
const (
	paneAccounts = iota
	paneAccountForm
	paneTransactionForm
	paneTransactions
	paneCount
)

// App composes the four panes around one shared client. It owns focus and
// layout, routes messages, and dispatches the refetch bindings after a
// successful write; it has no domain state of its own. Each pane's failure
// is local and never disturbs its siblings.
type App struct {
	client *client.Client
	logger *log.Logger

	accounts        AccountList
	accountForm     AccountForm
	transactionForm TransactionForm
	transactions    TransactionList

	focus  int
	width  int
	height int
}

// NewApp builds the shell and its panes.
func NewApp(c *client.Client, logger *log.Logger) App {
	if logger == nil {
		logger = log.Discard()
	}
	app := App{
		client:          c,
		logger:          logger.WithComponent(log.ComponentTUI),
		accounts:        NewAccountList(c),
		accountForm:     NewAccountForm(c),
		transactionForm: NewTransactionForm(c),
		transactions:    NewTransactionList(c),
	}
	return app.applyFocus()
}

// Init starts every pane's initial read.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.accounts.Init(),
		a.accountForm.Init(),
		a.transactionForm.Init(),
		a.transactions.Init(),
		tea.EnterAltScreen,
	)
}

func (a App) applyFocus() App {
	a.accounts = a.accounts.Focus(a.focus == paneAccounts)
	a.accountForm = a.accountForm.Focus(a.focus == paneAccountForm)
	a.transactionForm = a.transactionForm.Focus(a.focus == paneTransactionForm)
	a.transactions = a.transactions.Focus(a.focus == paneTransactions)
	return a
}

// refetchCmds maps the bound reads of a successful write to their reload
// commands. The write's own success reporting has already happened; these
// run asynchronously after it.
func (a App) refetchCmds(write contract.Operation) tea.Cmd {
	var cmds []tea.Cmd
	for _, op := range client.BindingsFor(write) {
		switch op {
		case contract.OpListAccounts:
			cmds = append(cmds, loadAccountsCmd(a.client))
		case contract.OpListTransactions:
			cmds = append(cmds, loadTransactionsCmd(a.client))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Sequence(cmds...)
}

// Update routes messages to panes and handles shell-level keys.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		paneWidth := msg.Width/2 - 4
		paneHeight := msg.Height/2 - 3
		a.accounts = a.accounts.SetSize(paneWidth, paneHeight)
		a.transactions = a.transactions.SetSize(paneWidth, paneHeight)
		return a, nil

	case accountsLoadedMsg:
		// One read, two consumers: the list and the form's selector.
		var cmd tea.Cmd
		a.accounts, cmd = a.accounts.Update(msg)
		a.transactionForm, _ = a.transactionForm.Update(msg)
		if msg.err != nil {
			a.logger.Warn("accounts read failed", log.FieldError, msg.err.Error())
		}
		return a, cmd

	case transactionsLoadedMsg:
		var cmd tea.Cmd
		a.transactions, cmd = a.transactions.Update(msg)
		if msg.err != nil {
			a.logger.Warn("transactions read failed", log.FieldError, msg.err.Error())
		}
		return a, cmd

	case accountCreatedMsg:
		var cmd tea.Cmd
		a.accountForm, cmd = a.accountForm.Update(msg)
		if msg.err != nil {
			return a, cmd
		}
		return a, tea.Batch(cmd, a.refetchCmds(contract.OpCreateAccount))

	case transactionRecordedMsg:
		var cmd tea.Cmd
		a.transactionForm, cmd = a.transactionForm.Update(msg)
		if msg.err != nil {
			return a, cmd
		}
		return a, tea.Batch(cmd, a.refetchCmds(contract.OpRecordTransaction))

	case spinner.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.accounts, cmd = a.accounts.Update(msg)
		cmds = append(cmds, cmd)
		a.transactions, cmd = a.transactions.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab":
			a.focus = (a.focus + 1) % paneCount
			return a.applyFocus(), nil
		case "shift+tab":
			a.focus = (a.focus + paneCount - 1) % paneCount
			return a.applyFocus(), nil
		case "q":
			// Forms need the character; only the lists treat it as quit.
			if a.focus == paneAccounts || a.focus == paneTransactions {
				return a, tea.Quit
			}
		}
		return a.routeKey(msg)
	}
	return a, nil
}

// routeKey delivers a key to the focused pane only.
func (a App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.focus {
	case paneAccounts:
		a.accounts, cmd = a.accounts.Update(msg)
	case paneAccountForm:
		a.accountForm, cmd = a.accountForm.Update(msg)
	case paneTransactionForm:
		a.transactionForm, cmd = a.transactionForm.Update(msg)
	case paneTransactions:
		a.transactions, cmd = a.transactions.Update(msg)
	}
	return a, cmd
}

// View arranges the four panes for simultaneous visibility.
func (a App) View() string {
	box := func(pane int, content string) string {
		style := boxStyle
		if a.focus == pane {
			style = activeBoxStyle
		}
		if a.width > 8 {
			style = style.Width(a.width/2 - 4)
		}
		return style.Render(content)
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		box(paneAccounts, a.accounts.View()),
		box(paneAccountForm, a.accountForm.View()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		box(paneTransactionForm, a.transactionForm.View()),
		box(paneTransactions, a.transactions.View()),
	)

	help := helpStyle.Render(
		FormatKey("tab", "panneau suivant") + " • " +
			FormatKey("r", "rafraîchir") + " • " +
			FormatKey("ctrl+c", "quitter"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		help,
	)
}

// Run starts the dashboard program.
func Run(c *client.Client, logger *log.Logger) error {
	p := tea.NewProgram(NewApp(c, logger))
	_, err := p.Run()
	return err
}

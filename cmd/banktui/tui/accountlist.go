package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"banktui/internal/client"
	"banktui/internal/contract"
)

// readState is the three-state machine every read-driven pane follows.
// Transitions are driven solely by the outcome of the underlying read.
type readState int

const (
	stateLoading readState = iota
	stateFailed
	stateReady
)

// AccountList renders every account with a count footer. Loading shows a
// spinner and no rows; a failure shows the backend message verbatim; a manual
// refresh restarts at loading without discarding the current rows until the
// new response lands.
type AccountList struct {
	client   *client.Client
	state    readState
	errText  string
	accounts []contract.Account
	table    table.Model
	spinner  spinner.Model
	focused  bool
	width    int
}

// NewAccountList builds the pane in its loading state.
func NewAccountList(c *client.Client) AccountList {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle

	t := table.New(
		table.WithColumns(accountColumns(64)),
		table.WithHeight(6),
	)

	return AccountList{
		client:  c,
		state:   stateLoading,
		table:   t,
		spinner: sp,
	}
}

func accountColumns(width int) []table.Column {
	id := width / 5
	if id < 6 {
		id = 6
	}
	rest := (width - id) / 3
	return []table.Column{
		{Title: "ID", Width: id},
		{Title: "Type", Width: rest},
		{Title: "Solde", Width: rest},
		{Title: "Créé le", Width: rest},
	}
}

// Init issues the initial read.
func (m AccountList) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadAccountsCmd(m.client))
}

// Refresh re-issues the read exactly once and restarts at loading.
func (m AccountList) Refresh() (AccountList, tea.Cmd) {
	m.state = stateLoading
	return m, tea.Batch(m.spinner.Tick, loadAccountsCmd(m.client))
}

// SetSize resizes the pane content area.
func (m AccountList) SetSize(width, height int) AccountList {
	m.width = width
	m.table.SetColumns(accountColumns(width))
	if height > 5 {
		m.table.SetHeight(height - 4)
	}
	return m
}

// Focus marks the pane as the keyboard target.
func (m AccountList) Focus(focused bool) AccountList {
	m.focused = focused
	if focused {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
	return m
}

// Update handles messages for the pane.
func (m AccountList) Update(msg tea.Msg) (AccountList, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		if msg.err != nil {
			m.state = stateFailed
			m.errText = msg.err.Error()
			return m, nil
		}
		m.state = stateReady
		m.errText = ""
		m.accounts = msg.accounts
		rows := make([]table.Row, len(msg.accounts))
		for i, a := range msg.accounts {
			rows[i] = table.Row{a.ID, a.Kind.Label(), contract.FormatAmount(a.Balance), a.CreatedAt.String()}
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
func (m AccountList) View() string {
	title := titleStyle.Render("Comptes")

	switch m.state {
	case stateLoading:
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			m.spinner.View()+mutedStyle.Render(" Chargement des comptes..."),
		)
	case stateFailed:
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			dangerStyle.Render(m.errText),
			helpStyle.Render(FormatKey("r", "réessayer")),
		)
	}

	footer := mutedStyle.Render(fmt.Sprintf("Total: %d compte(s)", len(m.accounts)))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.table.View(),
		footer,
	)
}

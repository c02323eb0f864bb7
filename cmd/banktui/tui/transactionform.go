package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"banktui/internal/client"
	"banktui/internal/contract"
)

// TransactionForm records a deposit or withdrawal against a selected account.
// Its account selector is fed by the shared accounts read and degrades to an
// empty selector until that read resolves; the selector has no loading or
// error UI of its own. Amount is validated strictly before account selection.
// On success the amount clears and the selection is preserved.
type TransactionForm struct {
	client   *client.Client
	state    formState
	amount   textinput.Model
	kind     kindSelector
	accounts []contract.Account
	selected int // index into accounts, -1 when nothing is selected
	notice   notice
	focused  bool
}

// NewTransactionForm builds the form in its idle state with an empty
// selector.
func NewTransactionForm(c *client.Client) TransactionForm {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.Prompt = "Montant: "
	ti.CharLimit = 16
	ti.Width = 14

	m := TransactionForm{
		client:   c,
		amount:   ti,
		kind:     newKindSelector(contract.KindDeposit.Label(), contract.KindWithdrawal.Label()),
		selected: -1,
	}
	// The selector may already have data from a sibling's read.
	if accounts, ok := c.CachedAccounts(); ok {
		m = m.setAccounts(accounts)
	}
	return m
}

// Init does nothing: the selector read is owned by the account list and its
// result fans out to this form.
func (m TransactionForm) Init() tea.Cmd { return nil }

// Focus marks the form as the keyboard target.
func (m TransactionForm) Focus(focused bool) TransactionForm {
	m.focused = focused
	if focused {
		m.amount.Focus()
	} else {
		m.amount.Blur()
	}
	return m
}

// setAccounts refreshes the selector options, preserving the current
// selection by account id when it still exists.
func (m TransactionForm) setAccounts(accounts []contract.Account) TransactionForm {
	var selectedID string
	if m.selected >= 0 && m.selected < len(m.accounts) {
		selectedID = m.accounts[m.selected].ID
	}
	m.accounts = accounts
	m.selected = -1
	for i, a := range accounts {
		if a.ID == selectedID {
			m.selected = i
			break
		}
	}
	return m
}

func (m TransactionForm) selectedKind() contract.TransactionKind {
	if m.kind.selected == 1 {
		return contract.KindWithdrawal
	}
	return contract.KindDeposit
}

// submit validates client-side (amount first, then account selection) and,
// only when valid, goes to the network.
func (m TransactionForm) submit() (TransactionForm, tea.Cmd) {
	raw := strings.TrimSpace(m.amount.Value())
	amount, err := parseAmount(raw)
	if raw == "" || err != nil || !amount.IsPositive() {
		m.notice = errorNotice(contract.ErrInvalidAmount.Error())
		return m, nil
	}
	if m.selected < 0 || m.selected >= len(m.accounts) {
		m.notice = errorNotice(contract.ErrNoAccountSelected.Error())
		return m, nil
	}
	in := contract.RecordTransactionInput{
		Amount:    amount,
		AccountID: m.accounts[m.selected].ID,
		Kind:      m.selectedKind(),
	}
	if err := in.Validate(); err != nil {
		m.notice = errorNotice(err.Error())
		return m, nil
	}
	m.state = formSubmitting
	m.notice = notice{}
	return m, recordTransactionCmd(m.client, in)
}

// Update handles messages for the form.
func (m TransactionForm) Update(msg tea.Msg) (TransactionForm, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		// Selector feed; failures leave the current options in place.
		if msg.err == nil {
			m = m.setAccounts(msg.accounts)
		}
		return m, nil

	case transactionRecordedMsg:
		m.state = formIdle
		if msg.err != nil {
			m.notice = errorNotice(msg.err.Error())
			return m, nil
		}
		m.notice = successNotice("Transaction enregistrée: " + msg.transaction.ID)
		m.amount.SetValue("")
		return m, nil

	case tea.KeyMsg:
		if !m.focused || m.state == formSubmitting {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			return m.submit()
		case "left", "right":
			m.kind.next()
			return m, nil
		case "up":
			if len(m.accounts) > 0 {
				if m.selected <= 0 {
					m.selected = len(m.accounts) - 1
				} else {
					m.selected--
				}
			}
			return m, nil
		case "down":
			if len(m.accounts) > 0 {
				m.selected = (m.selected + 1) % len(m.accounts)
			}
			return m, nil
		}
		m.notice = notice{}
		var cmd tea.Cmd
		m.amount, cmd = m.amount.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the form.
func (m TransactionForm) View() string {
	lines := []string{
		titleStyle.Render("Nouvelle transaction"),
		m.amount.View(),
		m.kind.view(),
		m.selectorView(),
	}
	if m.state == formSubmitting {
		lines = append(lines, infoStyle.Render("Envoi..."))
	} else if m.notice.kind != noticeNone {
		lines = append(lines, m.notice.render())
	}
	if m.focused {
		lines = append(lines, helpStyle.Render(
			FormatKey("↑/↓", "compte")+" • "+FormatKey("←/→", "type")+" • "+FormatKey("enter", "valider"),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m TransactionForm) selectorView() string {
	if len(m.accounts) == 0 {
		return mutedStyle.Render("Compte: (aucun)")
	}
	if m.selected < 0 {
		return mutedStyle.Render(fmt.Sprintf("Compte: choisir parmi %d (↑/↓)", len(m.accounts)))
	}
	a := m.accounts[m.selected]
	return mutedStyle.Render("Compte: ") +
		selectedItemStyle.Render(a.ID) +
		mutedStyle.Render(fmt.Sprintf(" (%s, %s)", a.Kind.Label(), contract.FormatAmount(a.Balance)))
}

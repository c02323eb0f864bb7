package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"banktui/internal/client"
	"banktui/internal/contract"
)

// formState is the write-driven pane machine. Validation happens inside the
// submit handling; an invalid input surfaces a notice and stays idle without
// contacting the backend.
type formState int

const (
	formIdle formState = iota
	formSubmitting
)

// AccountForm creates accounts. On success the balance field clears and the
// kind selector resets to its default; on failure the server message shows
// and the input stays for correction.
type AccountForm struct {
	client  *client.Client
	state   formState
	balance textinput.Model
	kind    kindSelector
	notice  notice
	focused bool
}

// NewAccountForm builds the form in its idle state.
func NewAccountForm(c *client.Client) AccountForm {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.Prompt = "Solde initial: "
	ti.CharLimit = 16
	ti.Width = 14

	return AccountForm{
		client:  c,
		balance: ti,
		kind:    newKindSelector(contract.KindCurrent.Label(), contract.KindSavings.Label()),
	}
}

// Init does nothing; the form issues no reads.
func (m AccountForm) Init() tea.Cmd { return nil }

// Focus marks the form as the keyboard target.
func (m AccountForm) Focus(focused bool) AccountForm {
	m.focused = focused
	if focused {
		m.balance.Focus()
	} else {
		m.balance.Blur()
	}
	return m
}

func (m AccountForm) selectedKind() contract.AccountKind {
	if m.kind.selected == 1 {
		return contract.KindSavings
	}
	return contract.KindCurrent
}

// submit validates client-side and, only when valid, goes to the network.
func (m AccountForm) submit() (AccountForm, tea.Cmd) {
	raw := strings.TrimSpace(m.balance.Value())
	balance, err := parseAmount(raw)
	if raw == "" || err != nil {
		m.notice = errorNotice(contract.ErrInvalidBalance.Error())
		return m, nil
	}
	in := contract.CreateAccountInput{Balance: balance, Kind: m.selectedKind()}
	if err := in.Validate(); err != nil {
		m.notice = errorNotice(err.Error())
		return m, nil
	}
	m.state = formSubmitting
	m.notice = notice{}
	return m, createAccountCmd(m.client, in)
}

// Update handles messages for the form.
func (m AccountForm) Update(msg tea.Msg) (AccountForm, tea.Cmd) {
	switch msg := msg.(type) {
	case accountCreatedMsg:
		m.state = formIdle
		if msg.err != nil {
			m.notice = errorNotice(msg.err.Error())
			return m, nil
		}
		m.notice = successNotice("Compte créé: " + msg.account.ID)
		m.balance.SetValue("")
		m.kind.reset()
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
		}
		// Any edit clears the previous notice.
		m.notice = notice{}
		var cmd tea.Cmd
		m.balance, cmd = m.balance.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the form.
func (m AccountForm) View() string {
	lines := []string{
		titleStyle.Render("Nouveau compte"),
		m.balance.View(),
		m.kind.view(),
	}
	if m.state == formSubmitting {
		lines = append(lines, infoStyle.Render("Envoi..."))
	} else if m.notice.kind != noticeNone {
		lines = append(lines, m.notice.render())
	}
	if m.focused {
		lines = append(lines, helpStyle.Render(
			FormatKey("←/→", "type de compte")+" • "+FormatKey("enter", "créer"),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// parseAmount parses a user-typed amount; a comma decimal separator is
// accepted.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}

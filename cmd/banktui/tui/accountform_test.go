package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"banktui/internal/contract"
)

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

func TestAccountForm_InvalidBalanceBlocksSubmit(t *testing.T) {
	tests := []struct {
		name    string
		balance string
	}{
		{name: "empty", balance: ""},
		{name: "not a number", balance: "abc"},
		{name: "negative", balance: "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAccountForm(testClient(t)).Focus(true)
			m.balance.SetValue(tt.balance)

			m, cmd := m.Update(enterKey)
			assert.Nil(t, cmd, "invalid input must not contact the backend")
			assert.Equal(t, formIdle, m.state)
			assert.Equal(t, noticeError, m.notice.kind)
			assert.Equal(t, "invalid balance", m.notice.text)
		})
	}
}

func TestAccountForm_ValidSubmitGoesToNetwork(t *testing.T) {
	m := NewAccountForm(testClient(t)).Focus(true)
	m.balance.SetValue("1500.50")

	m, cmd := m.Update(enterKey)
	assert.NotNil(t, cmd)
	assert.Equal(t, formSubmitting, m.state)
}

func TestAccountForm_ZeroBalanceIsValid(t *testing.T) {
	m := NewAccountForm(testClient(t)).Focus(true)
	m.balance.SetValue("0")

	m, cmd := m.Update(enterKey)
	assert.NotNil(t, cmd)
	assert.Equal(t, formSubmitting, m.state)
}

func TestAccountForm_SuccessResetsFields(t *testing.T) {
	m := NewAccountForm(testClient(t)).Focus(true)
	m.balance.SetValue("100")
	m.kind.next() // savings
	m, _ = m.Update(enterKey)

	created := contract.Account{
		ID:        "3",
		Balance:   decimal.RequireFromString("100"),
		Kind:      contract.KindSavings,
		CreatedAt: contract.NewDate(2025, time.August, 29),
	}
	m, _ = m.Update(accountCreatedMsg{account: created})

	assert.Equal(t, formIdle, m.state)
	assert.Equal(t, noticeSuccess, m.notice.kind)
	assert.Empty(t, m.balance.Value(), "balance field resets to empty")
	assert.Equal(t, 0, m.kind.selected, "kind selector resets to default")
}

func TestAccountForm_FailureKeepsInput(t *testing.T) {
	m := NewAccountForm(testClient(t)).Focus(true)
	m.balance.SetValue("100")
	m, _ = m.Update(enterKey)

	m, _ = m.Update(accountCreatedMsg{err: errors.New("Type de compte invalide")})

	assert.Equal(t, formIdle, m.state)
	assert.Equal(t, noticeError, m.notice.kind)
	assert.Contains(t, m.View(), "Type de compte invalide")
	assert.Equal(t, "100", m.balance.Value(), "input stays for correction")
}

func TestAccountForm_EditClearsNotice(t *testing.T) {
	m := NewAccountForm(testClient(t)).Focus(true)
	m, _ = m.Update(enterKey) // empty balance -> notice

	assert.Equal(t, noticeError, m.notice.kind)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	assert.Equal(t, noticeNone, m.notice.kind)
	assert.Equal(t, "5", m.balance.Value())
}

func TestAccountForm_IgnoresKeysWhileSubmitting(t *testing.T) {
	m := NewAccountForm(testClient(t)).Focus(true)
	m.balance.SetValue("10")
	m, _ = m.Update(enterKey)
	assert.Equal(t, formSubmitting, m.state)

	m, cmd := m.Update(enterKey)
	assert.Nil(t, cmd, "no double submit while in flight")
	assert.Equal(t, formSubmitting, m.state)
}

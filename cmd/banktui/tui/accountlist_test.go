package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"banktui/internal/client"
	"banktui/internal/config"
	"banktui/internal/contract"
)

// testClient builds a client that never gets called; the panes are driven
// directly with messages.
func testClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.New(&config.Config{Endpoint: "http://localhost:9/graphql"}, nil)
	assert.NoError(t, err)
	return c
}

func twoTestAccounts() []contract.Account {
	return []contract.Account{
		{
			ID:        "1",
			Balance:   decimal.RequireFromString("1500.50"),
			Kind:      contract.KindCurrent,
			CreatedAt: contract.NewDate(2025, time.January, 15),
		},
		{
			ID:        "2",
			Balance:   decimal.RequireFromString("5000.00"),
			Kind:      contract.KindSavings,
			CreatedAt: contract.NewDate(2025, time.February, 20),
		},
	}
}

func TestAccountList_LoadingState(t *testing.T) {
	m := NewAccountList(testClient(t))

	assert.Equal(t, stateLoading, m.state)
	view := m.View()
	assert.Contains(t, view, "Chargement")
	assert.NotContains(t, view, "Total:")
	assert.NotContains(t, view, "1500.50")
}

func TestAccountList_ReadyState(t *testing.T) {
	m := NewAccountList(testClient(t))

	m, cmd := m.Update(accountsLoadedMsg{accounts: twoTestAccounts()})
	assert.Nil(t, cmd)
	assert.Equal(t, stateReady, m.state)

	view := m.View()
	assert.Contains(t, view, "Total: 2 compte(s)")
	assert.Contains(t, view, "1500.50")
	assert.Contains(t, view, "5000.00")
	assert.Contains(t, view, "Courant")
	assert.Contains(t, view, "Épargne")
	assert.Contains(t, view, "2025-01-15")
}

func TestAccountList_ErrorState(t *testing.T) {
	m := NewAccountList(testClient(t))

	m, _ = m.Update(accountsLoadedMsg{err: errors.New("backend indisponible")})
	assert.Equal(t, stateFailed, m.state)

	view := m.View()
	assert.Contains(t, view, "backend indisponible")
	assert.NotContains(t, view, "Total:")
}

func TestAccountList_RefreshRestartsAtLoading(t *testing.T) {
	m := NewAccountList(testClient(t))
	m, _ = m.Update(accountsLoadedMsg{accounts: twoTestAccounts()})

	m, cmd := m.Refresh()
	assert.NotNil(t, cmd, "refresh must re-issue the read")
	assert.Equal(t, stateLoading, m.state)
	// Current data stays in place until the new response arrives.
	assert.Len(t, m.accounts, 2)
}

func TestAccountList_RefreshKeyOnlyWhenFocused(t *testing.T) {
	m := NewAccountList(testClient(t))
	m, _ = m.Update(accountsLoadedMsg{accounts: twoTestAccounts()})

	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}

	m, cmd := m.Update(key)
	assert.Nil(t, cmd, "unfocused pane ignores keys")

	m = m.Focus(true)
	m, cmd = m.Update(key)
	assert.NotNil(t, cmd)
	assert.Equal(t, stateLoading, m.state)
}

func TestAccountList_ErrorRecoversThroughRefresh(t *testing.T) {
	m := NewAccountList(testClient(t))
	m, _ = m.Update(accountsLoadedMsg{err: errors.New("boom")})

	m, cmd := m.Refresh()
	assert.NotNil(t, cmd)
	assert.Equal(t, stateLoading, m.state)

	m, _ = m.Update(accountsLoadedMsg{accounts: twoTestAccounts()})
	assert.Equal(t, stateReady, m.state)
	assert.Empty(t, m.errText)
}

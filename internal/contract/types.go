// Package contract defines the operations and record shapes exchanged with
// the banking GraphQL backend. The backend owns both entity types; this
// package only describes the transient copies the client holds.
package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind is the fixed category of an account, immutable after creation.
type AccountKind string

const (
	KindCurrent AccountKind = "current"
	KindSavings AccountKind = "savings"
)

// ParseAccountKind maps user input to an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindCurrent:
		return KindCurrent, nil
	case KindSavings:
		return KindSavings, nil
	}
	return "", fmt.Errorf("unknown account kind %q (want current or savings)", s)
}

// Label returns the display label for the kind.
func (k AccountKind) Label() string {
	switch k {
	case KindCurrent:
		return "Courant"
	case KindSavings:
		return "Épargne"
	}
	return string(k)
}

// TransactionKind is the fixed category of a transaction.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

// ParseTransactionKind maps user input to a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdrawal:
		return KindWithdrawal, nil
	}
	return "", fmt.Errorf("unknown transaction kind %q (want deposit or withdrawal)", s)
}

// Label returns the display label for the kind.
func (k TransactionKind) Label() string {
	switch k {
	case KindDeposit:
		return "Dépôt"
	case KindWithdrawal:
		return "Retrait"
	}
	return string(k)
}

const dateLayout = "2006-01-02"

// Date is a calendar date as the backend serializes it (YYYY-MM-DD).
// RFC 3339 timestamps are accepted on the way in and truncated to the day.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON accepts "YYYY-MM-DD" or an RFC 3339 timestamp.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", s, err)
		}
	}
	d.Time = t
	return nil
}

// MarshalJSON emits "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// String returns the wire form of the date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// Account is a bank account snapshot as returned by the backend.
type Account struct {
	ID        string          `json:"id"`
	Balance   decimal.Decimal `json:"balance"`
	Kind      AccountKind     `json:"type"`
	CreatedAt Date            `json:"createdAt"`
}

// Transaction is an immutable deposit or withdrawal record. Account is
// embedded by value and reflects the owning account's balance after this
// transaction was applied, as of fetch time.
type Transaction struct {
	ID      string          `json:"id"`
	Kind    TransactionKind `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Date    Date            `json:"date"`
	Account Account         `json:"account"`
}

// Signed returns the amount with withdrawals negated, for running totals.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// AccountStats aggregates account balances backend-side.
type AccountStats struct {
	Count   int             `json:"count"`
	Sum     decimal.Decimal `json:"sum"`
	Average decimal.Decimal `json:"average"`
}

// TransactionStats aggregates transactions backend-side.
type TransactionStats struct {
	Count          int             `json:"count"`
	SumDeposits    decimal.Decimal `json:"sumDeposits"`
	SumWithdrawals decimal.Decimal `json:"sumWithdrawals"`
}

// FormatAmount renders a decimal as a currency string for display.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}

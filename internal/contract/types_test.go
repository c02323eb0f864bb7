package contract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: `"2025-01-15"`, want: NewDate(2025, time.January, 15)},
		{name: "rfc3339", input: `"2025-02-20T10:30:00Z"`, want: Date{time.Date(2025, time.February, 20, 10, 30, 0, 0, time.UTC)}},
		{name: "null", input: `null`, want: Date{}},
		{name: "empty string", input: `""`, want: Date{}},
		{name: "garbage", input: `"15/01/2025"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, d.Equal(tt.want.Time), "got %v want %v", d, tt.want)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2025, time.January, 15))
	assert.NoError(t, err)
	assert.Equal(t, `"2025-01-15"`, string(b))

	b, err = json.Marshal(Date{})
	assert.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestParseAccountKind(t *testing.T) {
	kind, err := ParseAccountKind("  Savings ")
	assert.NoError(t, err)
	assert.Equal(t, KindSavings, kind)

	_, err = ParseAccountKind("checking")
	assert.Error(t, err)
}

func TestParseTransactionKind(t *testing.T) {
	kind, err := ParseTransactionKind("WITHDRAWAL")
	assert.NoError(t, err)
	assert.Equal(t, KindWithdrawal, kind)

	_, err = ParseTransactionKind("transfer")
	assert.Error(t, err)
}

func TestKindLabels(t *testing.T) {
	assert.Equal(t, "Courant", KindCurrent.Label())
	assert.Equal(t, "Épargne", KindSavings.Label())
	assert.Equal(t, "Dépôt", KindDeposit.Label())
	assert.Equal(t, "Retrait", KindWithdrawal.Label())
}

func TestTransaction_Signed(t *testing.T) {
	amount := decimal.RequireFromString("500.00")

	deposit := Transaction{Kind: KindDeposit, Amount: amount}
	assert.True(t, deposit.Signed().Equal(amount))

	withdrawal := Transaction{Kind: KindWithdrawal, Amount: amount}
	assert.True(t, withdrawal.Signed().Equal(amount.Neg()))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1500.50 €", FormatAmount(decimal.RequireFromString("1500.5")))
	assert.Equal(t, "5000.00 €", FormatAmount(decimal.RequireFromString("5000")))
}

func TestAccount_DecodesBackendShape(t *testing.T) {
	payload := `{"id":"1","balance":1500.50,"type":"current","createdAt":"2025-01-15"}`

	var a Account
	assert.NoError(t, json.Unmarshal([]byte(payload), &a))
	assert.Equal(t, "1", a.ID)
	assert.Equal(t, KindCurrent, a.Kind)
	assert.True(t, a.Balance.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, "2025-01-15", a.CreatedAt.String())
}

func TestTransaction_EmbedsAccountByValue(t *testing.T) {
	payload := `{
		"id":"t1","type":"deposit","amount":500,"date":"2025-03-01",
		"account":{"id":"1","balance":2000.50,"type":"current","createdAt":"2025-01-15"}
	}`

	var tx Transaction
	assert.NoError(t, json.Unmarshal([]byte(payload), &tx))
	assert.Equal(t, KindDeposit, tx.Kind)
	assert.Equal(t, "1", tx.Account.ID)
	// Embedded account shows the post-transaction balance.
	assert.True(t, tx.Account.Balance.Equal(decimal.RequireFromString("2000.50")))
}

package contract

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validation errors surfaced to the user before any network call is made.
var (
	ErrInvalidBalance    = errors.New("invalid balance")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNoAccountSelected = errors.New("no account selected")
	ErrInvalidKind       = errors.New("invalid kind")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Teach the numeric comparison tags to see through decimal.Decimal.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// CreateAccountInput is the payload of the Create account operation.
type CreateAccountInput struct {
	Balance decimal.Decimal `json:"balance" validate:"gte=0"`
	Kind    AccountKind     `json:"type" validate:"required,oneof=current savings"`
}

// Validate enforces the client-side rules: balance must be >= 0 and the kind
// must be one of the two fixed categories.
func (in CreateAccountInput) Validate() error {
	return firstRuleError(validate.Struct(in), map[string]error{
		"Balance": ErrInvalidBalance,
		"Kind":    ErrInvalidKind,
	})
}

// RecordTransactionInput is the payload of the Record transaction operation.
// Field order matters: amount is validated strictly before account selection.
type RecordTransactionInput struct {
	Amount    decimal.Decimal `json:"amount" validate:"gt=0"`
	AccountID string          `json:"accountId" validate:"required"`
	Kind      TransactionKind `json:"type" validate:"required,oneof=deposit withdrawal"`
}

// Validate enforces the client-side rules: amount > 0, then an account must
// be selected. The kind comes from a fixed selector and is checked last.
func (in RecordTransactionInput) Validate() error {
	return firstRuleError(validate.Struct(in), map[string]error{
		"Amount":    ErrInvalidAmount,
		"AccountID": ErrNoAccountSelected,
		"Kind":      ErrInvalidKind,
	})
}

// firstRuleError maps the first failed rule to its sentinel error. Rules fail
// in struct-field order, which is how validation precedence is encoded.
func firstRuleError(err error, byField map[string]error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if mapped, ok := byField[verrs[0].StructField()]; ok {
			return mapped
		}
	}
	return err
}

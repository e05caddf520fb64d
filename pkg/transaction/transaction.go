package transaction

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimeFormat is the canonical timestamp layout used in storage and CSV exports.
const TimeFormat = "2006-01-02 15:04:05"

// DateFormat is the date-only layout accepted on input.
const DateFormat = "2006-01-02"

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidKind         = errors.New("transaction type must be income or expense")
	ErrMissingCategory     = errors.New("category is required")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
)

type Transaction struct {
	ID         int64
	Kind       Kind
	Category   string
	Amount     decimal.Decimal
	OccurredAt time.Time
}

// Period returns the calendar month the transaction belongs to, as "YYYY-MM".
func (t Transaction) Period() string {
	return t.OccurredAt.Format("2006-01")
}

// Validate checks the user-supplied fields. The ID and OccurredAt are
// store-assigned and defaulted respectively, so they are not validated here.
func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrMissingCategory
	}
	if t.Amount.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

package budget

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

// PeriodFormat is the calendar month identifier layout, e.g. "2024-03".
const PeriodFormat = "2006-01"

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var (
	ErrInvalidPeriod = errors.New("period must be in YYYY-MM format")
	ErrInvalidLimit  = errors.New("budget limit must be greater than zero")
)

// MonthlyBudget is the spending ceiling for one calendar month. At most one
// budget exists per period; setting it again overwrites the previous value.
type MonthlyBudget struct {
	ID     int64
	Period string
	Limit  decimal.Decimal
}

// Status is the computed spend-vs-budget state for a period. Callers receive
// it as *Status: nil means no budget is set for the period, which is a
// distinct state from a zero budget.
type Status struct {
	Limit       decimal.Decimal
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed float64
	Exceeded    bool
}

func ValidPeriod(period string) bool {
	return periodPattern.MatchString(period)
}

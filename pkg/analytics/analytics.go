package analytics

import (
	"github.com/shopspring/decimal"
	"github.com/stephenongoma/finance-tracker/pkg/budget"
	"github.com/stephenongoma/finance-tracker/pkg/health"
)

type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

type MonthlyStat struct {
	// Period is the calendar month of the bucket, as "YYYY-MM".
	Period  string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Trend is the month-over-month balance comparison. When Baseline is false
// there is nothing to compare against (no prior month, or a zero previous
// balance) and ChangePercent carries no meaning.
type Trend struct {
	Baseline      bool
	ChangePercent decimal.Decimal
}

// Dashboard bundles everything the overview page shows in one snapshot.
type Dashboard struct {
	Summary      Summary
	BudgetStatus *budget.Status
	Health       health.Score
}

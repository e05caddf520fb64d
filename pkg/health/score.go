package health

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/stephenongoma/finance-tracker/pkg/budget"
)

const (
	RatingExcellent        = "Excellent"
	RatingGood             = "Good"
	RatingNeedsImprovement = "Needs Improvement"
)

const (
	savingsMaxPoints = 60.0
	budgetMaxPoints  = 40.0
	// Saving a fifth of income earns the full savings component.
	targetSavingsRate = 0.20
)

// Score is a bounded 0-100 composite of savings behavior and budget adherence.
type Score struct {
	Value  int
	Rating string
}

// Calculate scores a period's finances. The savings component (up to 60
// points) rewards the income share left unspent; the budget component (up to
// 40 points) rewards staying under the monthly ceiling. A nil status means no
// budget is set and contributes nothing.
func Calculate(income, expense decimal.Decimal, status *budget.Status) Score {
	points := savingsPoints(income, expense) + budgetPoints(status)

	value := int(math.Floor(points))
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	return Score{Value: value, Rating: rating(value)}
}

func savingsPoints(income, expense decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}
	savingsRate := income.Sub(expense).Div(income).InexactFloat64()
	switch {
	case savingsRate >= targetSavingsRate:
		return savingsMaxPoints
	case savingsRate > 0:
		return savingsRate / targetSavingsRate * savingsMaxPoints
	default:
		return 0
	}
}

func budgetPoints(status *budget.Status) float64 {
	if status == nil {
		return 0
	}
	if status.Spent.Cmp(status.Limit) <= 0 {
		return budgetMaxPoints
	}
	if !status.Limit.IsPositive() {
		// A zero ceiling with any spending is fully penalized.
		return 0
	}
	overageRatio := status.Spent.Sub(status.Limit).Div(status.Limit).InexactFloat64()
	penalty := math.Min(overageRatio*budgetMaxPoints, budgetMaxPoints)
	return budgetMaxPoints - penalty
}

func rating(value int) string {
	switch {
	case value >= 80:
		return RatingExcellent
	case value >= 60:
		return RatingGood
	default:
		return RatingNeedsImprovement
	}
}

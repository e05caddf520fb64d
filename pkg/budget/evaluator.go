package budget

import (
	"github.com/shopspring/decimal"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
)

// Evaluate computes the spend-vs-budget status for a period from a snapshot
// of transactions. It returns nil when no budget exists for the period.
//
// Exceeded is inclusive: spending exactly the limit counts as exceeded.
func Evaluate(period string, txs []transaction.Transaction, b *MonthlyBudget) *Status {
	if b == nil {
		return nil
	}

	spent := decimal.Zero
	for _, tx := range txs {
		if tx.Kind != transaction.KindExpense {
			continue
		}
		if tx.Period() != period {
			continue
		}
		spent = spent.Add(tx.Amount)
	}

	percentUsed := 0.0
	if b.Limit.IsPositive() {
		percentUsed = spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	return &Status{
		Limit:       b.Limit,
		Spent:       spent,
		Remaining:   b.Limit.Sub(spent),
		PercentUsed: percentUsed,
		Exceeded:    spent.Cmp(b.Limit) >= 0,
	}
}

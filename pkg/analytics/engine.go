package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
)

// Summarize sums transaction amounts partitioned by kind. An empty snapshot
// yields an all-zero summary.
func Summarize(txs []transaction.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range txs {
		switch tx.Kind {
		case transaction.KindIncome:
			income = income.Add(tx.Amount)
		case transaction.KindExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// BreakdownByCategory sums expense amounts grouped by category, sorted
// descending by amount with ties broken by category name. Categories without
// any expense transactions are omitted entirely.
func BreakdownByCategory(txs []transaction.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Kind != transaction.KindExpense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		breakdown = append(breakdown, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if cmp := breakdown[i].Amount.Cmp(breakdown[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// TopCategories returns at most n entries of the expense breakdown.
func TopCategories(txs []transaction.Transaction, n int) []CategoryTotal {
	breakdown := BreakdownByCategory(txs)
	if n >= 0 && len(breakdown) > n {
		breakdown = breakdown[:n]
	}
	return breakdown
}

// MonthlySeries buckets transactions by their full "YYYY-MM" calendar month
// and sums per kind. It returns at most windowMonths of the most recent
// buckets, in chronological order; windowMonths <= 0 means no limit.
// Transactions without a usable timestamp are excluded from the series.
func MonthlySeries(txs []transaction.Transaction, windowMonths int) []MonthlyStat {
	buckets := make(map[string]*MonthlyStat)
	for _, tx := range txs {
		if tx.OccurredAt.IsZero() {
			continue
		}
		period := tx.Period()
		stat, ok := buckets[period]
		if !ok {
			stat = &MonthlyStat{Period: period}
			buckets[period] = stat
		}
		switch tx.Kind {
		case transaction.KindIncome:
			stat.Income = stat.Income.Add(tx.Amount)
		case transaction.KindExpense:
			stat.Expense = stat.Expense.Add(tx.Amount)
		}
	}

	periods := make([]string, 0, len(buckets))
	for period := range buckets {
		periods = append(periods, period)
	}
	// "YYYY-MM" keys sort chronologically as plain strings.
	sort.Strings(periods)
	if windowMonths > 0 && len(periods) > windowMonths {
		periods = periods[len(periods)-windowMonths:]
	}

	series := make([]MonthlyStat, 0, len(periods))
	for _, period := range periods {
		series = append(series, *buckets[period])
	}
	return series
}

// MonthOverMonthTrend computes the percent change between two period balances.
// Without a prior period, or with a zero previous balance, there is no
// baseline to compare against and the trend is reported as such instead of
// producing a division artifact.
func MonthOverMonthTrend(current, previous decimal.Decimal, hasPrevious bool) Trend {
	if !hasPrevious || previous.IsZero() {
		return Trend{Baseline: false}
	}
	change := current.Sub(previous).Div(previous.Abs()).Mul(decimal.NewFromInt(100))
	return Trend{Baseline: true, ChangePercent: change}
}

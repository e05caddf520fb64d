package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(category, amount, date string) transaction.Transaction {
	occurredAt, err := time.Parse(transaction.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return transaction.Transaction{
		Kind:       transaction.KindExpense,
		Category:   category,
		Amount:     decimal.RequireFromString(amount),
		OccurredAt: occurredAt,
	}
}

func TestEvaluate_noBudget(t *testing.T) {
	status := Evaluate("2024-03", []transaction.Transaction{expense("Food", "100", "2024-03-01")}, nil)

	assert.Nil(t, status)
}

func TestEvaluate(t *testing.T) {
	// given: one expense outside the period, one income inside it
	txs := []transaction.Transaction{
		expense("Rent", "1500", "2024-03-01"),
		expense("Food", "500", "2024-03-10"),
		expense("Food", "999", "2024-02-28"),
		{
			Kind:       transaction.KindIncome,
			Category:   "Salary",
			Amount:     decimal.RequireFromString("5000"),
			OccurredAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	b := &MonthlyBudget{Period: "2024-03", Limit: decimal.RequireFromString("4000")}

	// when
	status := Evaluate("2024-03", txs, b)

	// then
	require.NotNil(t, status)
	assert.Equal(t, "2000", status.Spent.String())
	assert.Equal(t, "2000", status.Remaining.String())
	assert.InDelta(t, 50.0, status.PercentUsed, 0.0001)
	assert.False(t, status.Exceeded)
}

func TestEvaluate_exceededIsInclusive(t *testing.T) {
	txs := []transaction.Transaction{expense("Rent", "5000", "2024-03-01")}
	b := &MonthlyBudget{Period: "2024-03", Limit: decimal.RequireFromString("5000")}

	status := Evaluate("2024-03", txs, b)

	require.NotNil(t, status)
	assert.True(t, status.Exceeded, "spending exactly the limit counts as exceeded")
	assert.True(t, status.Remaining.IsZero())
	assert.InDelta(t, 100.0, status.PercentUsed, 0.0001)
}

func TestEvaluate_overBudget(t *testing.T) {
	txs := []transaction.Transaction{expense("Rent", "6000", "2024-03-01")}
	b := &MonthlyBudget{Period: "2024-03", Limit: decimal.RequireFromString("4000")}

	status := Evaluate("2024-03", txs, b)

	require.NotNil(t, status)
	assert.True(t, status.Exceeded)
	assert.Equal(t, "-2000", status.Remaining.String())
	assert.InDelta(t, 150.0, status.PercentUsed, 0.0001)
}

func TestEvaluate_noSpending(t *testing.T) {
	b := &MonthlyBudget{Period: "2024-03", Limit: decimal.RequireFromString("4000")}

	status := Evaluate("2024-03", nil, b)

	require.NotNil(t, status)
	assert.True(t, status.Spent.IsZero())
	assert.False(t, status.Exceeded)
	assert.Equal(t, 0.0, status.PercentUsed)
}

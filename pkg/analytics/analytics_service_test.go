package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenongoma/finance-tracker/internal/utils"
	"github.com/stephenongoma/finance-tracker/pkg/budget"
	"github.com/stephenongoma/finance-tracker/pkg/health"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}

func setup(t *testing.T) (*AnalyticsServiceImpl, *transaction.StubTransactionRepo, *budget.StubBudgetRepo) {
	t.Helper()
	transactionRepo := transaction.NewStubTransactionRepo()
	budgetRepo := budget.NewStubBudgetRepo()
	service := NewAnalyticsService(transactionRepo, budgetRepo, clock)
	return service, transactionRepo, budgetRepo
}

func seed(t *testing.T, repo *transaction.StubTransactionRepo) {
	t.Helper()
	ctx := context.Background()
	txs := []transaction.Transaction{
		{Kind: transaction.KindIncome, Category: "Salary", Amount: decimal.RequireFromString("2000"),
			OccurredAt: time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC)},
		{Kind: transaction.KindExpense, Category: "Rent", Amount: decimal.RequireFromString("1000"),
			OccurredAt: time.Date(2024, time.February, 2, 8, 0, 0, 0, time.UTC)},
		{Kind: transaction.KindIncome, Category: "Salary", Amount: decimal.RequireFromString("5000"),
			OccurredAt: time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)},
		{Kind: transaction.KindExpense, Category: "Rent", Amount: decimal.RequireFromString("3000"),
			OccurredAt: time.Date(2024, time.March, 2, 8, 0, 0, 0, time.UTC)},
	}
	for _, tx := range txs {
		_, err := repo.Store(ctx, tx)
		require.NoError(t, err)
	}
}

func TestAnalyticsServiceImpl_Dashboard(t *testing.T) {
	service, transactionRepo, budgetRepo := setup(t)
	ctx := context.Background()

	// given
	seed(t, transactionRepo)
	_, err := budgetRepo.Upsert(ctx, budget.MonthlyBudget{Period: "2024-03", Limit: decimal.RequireFromString("4000")})
	require.NoError(t, err)

	// when
	dashboard, err := service.Dashboard(ctx)

	// then
	require.NoError(t, err)
	assert.Equal(t, "7000", dashboard.Summary.Income.String())
	assert.Equal(t, "4000", dashboard.Summary.Expense.String())
	assert.Equal(t, "3000", dashboard.Summary.Balance.String())

	// the budget status covers only the clock's current month
	require.NotNil(t, dashboard.BudgetStatus)
	assert.Equal(t, "3000", dashboard.BudgetStatus.Spent.String())
	assert.False(t, dashboard.BudgetStatus.Exceeded)

	// savings above threshold and spending under budget max the score out
	assert.Equal(t, 100, dashboard.Health.Value)
	assert.Equal(t, health.RatingExcellent, dashboard.Health.Rating)
}

func TestAnalyticsServiceImpl_Dashboard_noBudget(t *testing.T) {
	service, transactionRepo, _ := setup(t)
	seed(t, transactionRepo)

	dashboard, err := service.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Nil(t, dashboard.BudgetStatus)
	assert.Equal(t, 60, dashboard.Health.Value)
}

func TestAnalyticsServiceImpl_Trend(t *testing.T) {
	service, transactionRepo, _ := setup(t)
	seed(t, transactionRepo)

	trend, err := service.Trend(context.Background())

	require.NoError(t, err)
	// February balance 1000 -> March balance 2000
	assert.True(t, trend.Baseline)
	assert.Equal(t, "100", trend.ChangePercent.String())
}

func TestAnalyticsServiceImpl_Trend_noBaseline(t *testing.T) {
	service, transactionRepo, _ := setup(t)
	_, err := transactionRepo.Store(context.Background(), transaction.Transaction{
		Kind: transaction.KindIncome, Category: "Salary", Amount: decimal.RequireFromString("5000"),
		OccurredAt: time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	trend, err := service.Trend(context.Background())

	require.NoError(t, err)
	assert.False(t, trend.Baseline)
}

func TestAnalyticsServiceImpl_CategoryDistribution(t *testing.T) {
	service, transactionRepo, _ := setup(t)
	seed(t, transactionRepo)
	_, err := transactionRepo.Store(context.Background(), transaction.Transaction{
		Kind: transaction.KindExpense, Category: "Food", Amount: decimal.RequireFromString("500"),
		OccurredAt: time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	distribution, err := service.CategoryDistribution(context.Background())

	require.NoError(t, err)
	// February's rent is excluded; only the clock's current month counts
	require.Len(t, distribution, 2)
	assert.Equal(t, "Rent", distribution[0].Category)
	assert.Equal(t, "3000", distribution[0].Amount.String())
	assert.Equal(t, "Food", distribution[1].Category)
	assert.Equal(t, "500", distribution[1].Amount.String())
}

func TestAnalyticsServiceImpl_MonthlySummary(t *testing.T) {
	service, transactionRepo, _ := setup(t)
	seed(t, transactionRepo)

	series, err := service.MonthlySummary(context.Background(), 12)

	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-02", series[0].Period)
	assert.Equal(t, "2024-03", series[1].Period)
}

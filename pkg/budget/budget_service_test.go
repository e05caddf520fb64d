package budget

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenongoma/finance-tracker/internal/utils"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}

func setup() (*BudgetServiceImpl, *StubBudgetRepo, *transaction.StubTransactionRepo) {
	budgetRepo := NewStubBudgetRepo()
	transactionRepo := transaction.NewStubTransactionRepo()
	service := NewBudgetService(budgetRepo, transactionRepo, clock)
	return service, budgetRepo, transactionRepo
}

func TestBudgetServiceImpl_Set(t *testing.T) {
	service, _, _ := setup()

	b, err := service.Set(context.Background(), "2024-03", decimal.RequireFromString("4000"))

	require.NoError(t, err)
	assert.Equal(t, "2024-03", b.Period)
	assert.Equal(t, "4000", b.Limit.String())
}

func TestBudgetServiceImpl_Set_defaultsToCurrentMonth(t *testing.T) {
	service, repo, _ := setup()

	_, err := service.Set(context.Background(), "", decimal.RequireFromString("4000"))

	require.NoError(t, err)
	stored, err := repo.Find(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestBudgetServiceImpl_Set_overwritesExisting(t *testing.T) {
	service, repo, _ := setup()
	ctx := context.Background()

	_, err := service.Set(ctx, "2024-03", decimal.RequireFromString("4000"))
	require.NoError(t, err)
	_, err = service.Set(ctx, "2024-03", decimal.RequireFromString("6000"))
	require.NoError(t, err)

	stored, err := repo.Find(ctx, "2024-03")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "6000", stored.Limit.String())
}

func TestBudgetServiceImpl_Set_validation(t *testing.T) {
	service, _, _ := setup()
	ctx := context.Background()

	_, err := service.Set(ctx, "03-2024", decimal.RequireFromString("4000"))
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.Set(ctx, "2024-13", decimal.RequireFromString("4000"))
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.Set(ctx, "2024-03", decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = service.Set(ctx, "2024-03", decimal.RequireFromString("-100"))
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestBudgetServiceImpl_Get(t *testing.T) {
	service, _, _ := setup()
	ctx := context.Background()

	_, err := service.Set(ctx, "2024-03", decimal.RequireFromString("4000"))
	require.NoError(t, err)

	b, err := service.Get(ctx, "2024-03")

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "2024-03", b.Period)
	assert.Equal(t, "4000", b.Limit.String())
}

func TestBudgetServiceImpl_Get_noBudgetSet(t *testing.T) {
	service, _, _ := setup()

	b, err := service.Get(context.Background(), "2024-03")

	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestBudgetServiceImpl_Get_invalidPeriod(t *testing.T) {
	service, _, _ := setup()

	_, err := service.Get(context.Background(), "march")

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestBudgetServiceImpl_Status(t *testing.T) {
	service, _, transactionRepo := setup()
	ctx := context.Background()

	_, err := service.Set(ctx, "2024-03", decimal.RequireFromString("1000"))
	require.NoError(t, err)
	_, err = transactionRepo.Store(ctx, transaction.Transaction{
		Kind:       transaction.KindExpense,
		Category:   "Food",
		Amount:     decimal.RequireFromString("250"),
		OccurredAt: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	status, err := service.Status(ctx, "2024-03")

	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "250", status.Spent.String())
	assert.Equal(t, "750", status.Remaining.String())
}

func TestBudgetServiceImpl_Status_noBudgetSet(t *testing.T) {
	service, _, _ := setup()

	status, err := service.Status(context.Background(), "2024-03")

	require.NoError(t, err)
	assert.Nil(t, status, "missing budget must be reported as absent, not zero-filled")
}

package budget

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stephenongoma/finance-tracker/internal/utils"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
)

// TransactionReader provides the transaction snapshot the evaluator works on.
type TransactionReader interface {
	GetAll(ctx context.Context) ([]transaction.Transaction, error)
}

type BudgetService interface {
	// Set stores the budget for a period; an empty period means the current month.
	Set(ctx context.Context, period string, limit decimal.Decimal) (MonthlyBudget, error)
	Get(ctx context.Context, period string) (*MonthlyBudget, error)
	// Status evaluates spend against the period's budget; nil means no budget set.
	Status(ctx context.Context, period string) (*Status, error)
	// CurrentPeriod returns the calendar month of the wall clock as "YYYY-MM".
	CurrentPeriod() string
}

type BudgetServiceImpl struct {
	repo         BudgetRepo
	transactions TransactionReader
	clock        utils.Clock
}

func NewBudgetService(repo BudgetRepo, transactions TransactionReader, clock utils.Clock) *BudgetServiceImpl {
	return &BudgetServiceImpl{repo: repo, transactions: transactions, clock: clock}
}

func (s *BudgetServiceImpl) Set(ctx context.Context, period string, limit decimal.Decimal) (MonthlyBudget, error) {
	if period == "" {
		period = s.CurrentPeriod()
	}
	if !ValidPeriod(period) {
		return MonthlyBudget{}, ErrInvalidPeriod
	}
	if limit.Cmp(decimal.Zero) <= 0 {
		return MonthlyBudget{}, ErrInvalidLimit
	}

	b := MonthlyBudget{Period: period, Limit: limit}
	id, err := s.repo.Upsert(ctx, b)
	if err != nil {
		return MonthlyBudget{}, err
	}
	b.ID = id
	return b, nil
}

func (s *BudgetServiceImpl) Get(ctx context.Context, period string) (*MonthlyBudget, error) {
	if !ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}
	return s.repo.Find(ctx, period)
}

func (s *BudgetServiceImpl) Status(ctx context.Context, period string) (*Status, error) {
	if !ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}
	b, err := s.repo.Find(ctx, period)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	txs, err := s.transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Evaluate(period, txs, b), nil
}

func (s *BudgetServiceImpl) CurrentPeriod() string {
	return s.clock.Now().Format(PeriodFormat)
}

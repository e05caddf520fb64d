package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenongoma/finance-tracker/internal/utils"
	"github.com/stephenongoma/finance-tracker/pkg/budget"
	"github.com/stephenongoma/finance-tracker/pkg/health"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
)

// TransactionReader provides the point-in-time snapshot all derived metrics
// are computed from. The engine itself never touches storage.
type TransactionReader interface {
	GetAll(ctx context.Context) ([]transaction.Transaction, error)
}

type BudgetReader interface {
	Find(ctx context.Context, period string) (*budget.MonthlyBudget, error)
}

type AnalyticsService interface {
	Dashboard(ctx context.Context) (Dashboard, error)
	ExpensesByCategory(ctx context.Context) ([]CategoryTotal, error)
	// CategoryDistribution is the expense breakdown restricted to the
	// current calendar month.
	CategoryDistribution(ctx context.Context) ([]CategoryTotal, error)
	MonthlySummary(ctx context.Context, windowMonths int) ([]MonthlyStat, error)
	TopCategories(ctx context.Context, n int) ([]CategoryTotal, error)
	Trend(ctx context.Context) (Trend, error)
}

type AnalyticsServiceImpl struct {
	transactions TransactionReader
	budgets      BudgetReader
	clock        utils.Clock
}

func NewAnalyticsService(transactions TransactionReader, budgets BudgetReader, clock utils.Clock) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{transactions: transactions, budgets: budgets, clock: clock}
}

func (s *AnalyticsServiceImpl) Dashboard(ctx context.Context) (Dashboard, error) {
	txs, err := s.transactions.GetAll(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	summary := Summarize(txs)

	period := s.clock.Now().Format(budget.PeriodFormat)
	b, err := s.budgets.Find(ctx, period)
	if err != nil {
		return Dashboard{}, err
	}
	status := budget.Evaluate(period, txs, b)

	return Dashboard{
		Summary:      summary,
		BudgetStatus: status,
		Health:       health.Calculate(summary.Income, summary.Expense, status),
	}, nil
}

func (s *AnalyticsServiceImpl) ExpensesByCategory(ctx context.Context) ([]CategoryTotal, error) {
	txs, err := s.transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return BreakdownByCategory(txs), nil
}

func (s *AnalyticsServiceImpl) CategoryDistribution(ctx context.Context) ([]CategoryTotal, error) {
	txs, err := s.transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	period := s.clock.Now().Format(budget.PeriodFormat)
	inPeriod := make([]transaction.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Period() == period {
			inPeriod = append(inPeriod, tx)
		}
	}
	return BreakdownByCategory(inPeriod), nil
}

func (s *AnalyticsServiceImpl) MonthlySummary(ctx context.Context, windowMonths int) ([]MonthlyStat, error) {
	txs, err := s.transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlySeries(txs, windowMonths), nil
}

func (s *AnalyticsServiceImpl) TopCategories(ctx context.Context, n int) ([]CategoryTotal, error) {
	txs, err := s.transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return TopCategories(txs, n), nil
}

func (s *AnalyticsServiceImpl) Trend(ctx context.Context) (Trend, error) {
	txs, err := s.transactions.GetAll(ctx)
	if err != nil {
		return Trend{}, err
	}

	now := s.clock.Now()
	currentPeriod := now.Format(budget.PeriodFormat)
	// Step back from the first of the month so that e.g. March 31 does not
	// normalize into March again.
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousPeriod := firstOfMonth.AddDate(0, -1, 0).Format(budget.PeriodFormat)

	var current, previous decimal.Decimal
	hasPrevious := false
	for _, stat := range MonthlySeries(txs, 0) {
		switch stat.Period {
		case currentPeriod:
			current = stat.Income.Sub(stat.Expense)
		case previousPeriod:
			previous = stat.Income.Sub(stat.Expense)
			hasPrevious = true
		}
	}

	return MonthOverMonthTrend(current, previous, hasPrevious), nil
}

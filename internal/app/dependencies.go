package app

import (
	"database/sql"

	"github.com/stephenongoma/finance-tracker/internal/utils"
	"github.com/stephenongoma/finance-tracker/pkg/analytics"
	"github.com/stephenongoma/finance-tracker/pkg/budget"
	"github.com/stephenongoma/finance-tracker/pkg/csvio"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	TransactionRepo    transaction.TransactionRepo
	TransactionService *transaction.TransactionServiceImpl
	TransactionHandler *transaction.TransactionHandler

	BudgetRepo    budget.BudgetRepo
	BudgetService *budget.BudgetServiceImpl
	BudgetHandler *budget.BudgetHandler

	AnalyticsService *analytics.AnalyticsServiceImpl
	AnalyticsHandler *analytics.AnalyticsHandler

	CsvExporter   *csvio.CsvExporter
	CsvNormalizer *csvio.Normalizer
	CsvHandler    *csvio.CsvHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.TransactionRepo = transaction.NewTransactionRepo(db)
	deps.TransactionService = transaction.NewTransactionService(deps.TransactionRepo, deps.Clock)
	deps.TransactionHandler = transaction.NewTransactionHandler(deps.TransactionService)

	deps.BudgetRepo = budget.NewBudgetRepo(db)
	deps.BudgetService = budget.NewBudgetService(deps.BudgetRepo, deps.TransactionRepo, deps.Clock)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)

	deps.AnalyticsService = analytics.NewAnalyticsService(deps.TransactionRepo, deps.BudgetRepo, deps.Clock)
	deps.AnalyticsHandler = analytics.NewAnalyticsHandler(deps.AnalyticsService)

	deps.CsvExporter = csvio.NewCsvExporter()
	deps.CsvNormalizer = csvio.NewNormalizer(deps.Clock)
	deps.CsvHandler = csvio.NewCsvHandler(deps.TransactionRepo, deps.TransactionService, deps.CsvExporter, deps.CsvNormalizer)

	return deps
}

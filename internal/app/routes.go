package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Transactions
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Add).Methods("POST")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Delete).Methods("DELETE")

	// CSV import/export
	r.HandleFunc("/api/transaction/export", deps.CsvHandler.Export).Methods("GET")
	r.HandleFunc("/api/transaction/import", deps.CsvHandler.Import).Methods("POST")

	// Analytics
	r.HandleFunc("/api/summary", deps.AnalyticsHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/expenses-by-category", deps.AnalyticsHandler.GetExpensesByCategory).Methods("GET")
	r.HandleFunc("/api/category-distribution", deps.AnalyticsHandler.GetCategoryDistribution).Methods("GET")
	r.HandleFunc("/api/monthly-summary", deps.AnalyticsHandler.GetMonthlySummary).Methods("GET")
	r.HandleFunc("/api/top-categories", deps.AnalyticsHandler.GetTopCategories).Methods("GET")
	r.HandleFunc("/api/trend", deps.AnalyticsHandler.GetTrend).Methods("GET")

	// Budget
	r.HandleFunc("/api/budget", deps.BudgetHandler.Set).Methods("PUT")
	r.HandleFunc("/api/budget/{period}", deps.BudgetHandler.Get).Methods("GET")
	r.HandleFunc("/api/budget/{period}/status", deps.BudgetHandler.GetStatus).Methods("GET")
}

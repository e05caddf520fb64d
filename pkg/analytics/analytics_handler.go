package analytics

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type SummaryDTO struct {
	TotalIncome  string `json:"totalIncome"`
	TotalExpense string `json:"totalExpense"`
	Balance      string `json:"balance"`
}

type BudgetStatusDTO struct {
	Limit       string  `json:"limit"`
	Spent       string  `json:"spent"`
	Remaining   string  `json:"remaining"`
	PercentUsed float64 `json:"percentUsed"`
	Exceeded    bool    `json:"exceeded"`
}

type HealthDTO struct {
	Score  int    `json:"score"`
	Rating string `json:"rating"`
}

type DashboardDTO struct {
	Summary      SummaryDTO       `json:"summary"`
	BudgetStatus *BudgetStatusDTO `json:"budgetStatus,omitempty"`
	Health       HealthDTO        `json:"health"`
}

type CategoryTotalDTO struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

type MonthlyStatDTO struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

type TrendDTO struct {
	Baseline      bool   `json:"baseline"`
	ChangePercent string `json:"changePercent,omitempty"`
}

type AnalyticsHandler struct {
	service AnalyticsService
}

func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service}
}

func (handler *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	log.Debug("Computing dashboard summary")
	w.Header().Set("Content-Type", "application/json")

	dashboard, err := handler.service.Dashboard(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := DashboardDTO{
		Summary: SummaryDTO{
			TotalIncome:  dashboard.Summary.Income.String(),
			TotalExpense: dashboard.Summary.Expense.String(),
			Balance:      dashboard.Summary.Balance.String(),
		},
		Health: HealthDTO{
			Score:  dashboard.Health.Value,
			Rating: dashboard.Health.Rating,
		},
	}
	if status := dashboard.BudgetStatus; status != nil {
		dto.BudgetStatus = &BudgetStatusDTO{
			Limit:       status.Limit.String(),
			Spent:       status.Spent.String(),
			Remaining:   status.Remaining.String(),
			PercentUsed: status.PercentUsed,
			Exceeded:    status.Exceeded,
		}
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *AnalyticsHandler) GetExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	breakdown, err := handler.service.ExpensesByCategory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(categoryTotalsToDTO(breakdown)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *AnalyticsHandler) GetCategoryDistribution(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	distribution, err := handler.service.CategoryDistribution(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(categoryTotalsToDTO(distribution)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *AnalyticsHandler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	windowMonths := 12
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid months parameter", http.StatusBadRequest)
			return
		}
		windowMonths = parsed
	}

	series, err := handler.service.MonthlySummary(r.Context(), windowMonths)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]MonthlyStatDTO, 0, len(series))
	for _, stat := range series {
		dtos = append(dtos, MonthlyStatDTO{
			Month:   stat.Period,
			Income:  stat.Income.String(),
			Expense: stat.Expense.String(),
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *AnalyticsHandler) GetTopCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := 3
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	top, err := handler.service.TopCategories(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(categoryTotalsToDTO(top)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *AnalyticsHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	trend, err := handler.service.Trend(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := TrendDTO{Baseline: trend.Baseline}
	if trend.Baseline {
		dto.ChangePercent = trend.ChangePercent.StringFixed(2)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func categoryTotalsToDTO(totals []CategoryTotal) []CategoryTotalDTO {
	dtos := make([]CategoryTotalDTO, 0, len(totals))
	for _, total := range totals {
		dtos = append(dtos, CategoryTotalDTO{Category: total.Category, Amount: total.Amount.String()})
	}
	return dtos
}

package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BudgetDTO struct {
	Period string `json:"period"`
	Limit  string `json:"limit"`
}

type StatusDTO struct {
	Period      string  `json:"period"`
	Limit       string  `json:"limit"`
	Spent       string  `json:"spent"`
	Remaining   string  `json:"remaining"`
	PercentUsed float64 `json:"percentUsed"`
	Exceeded    bool    `json:"exceeded"`
}

type BudgetHandler struct {
	service BudgetService
}

func NewBudgetHandler(service BudgetService) *BudgetHandler {
	return &BudgetHandler{service}
}

func (handler *BudgetHandler) Set(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting monthly budget")
	w.Header().Set("Content-Type", "application/json")

	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := decimal.NewFromString(dto.Limit)
	if err != nil {
		http.Error(w, "Invalid budget limit", http.StatusBadRequest)
		return
	}

	b, err := handler.service.Set(r.Context(), dto.Period, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) || errors.Is(err, ErrInvalidLimit) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(BudgetDTO{Period: b.Period, Limit: b.Limit.String()}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	period := mux.Vars(r)["period"]
	if period == "" || period == "current" {
		period = handler.service.CurrentPeriod()
	}

	b, err := handler.service.Get(r.Context(), period)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if b == nil {
		http.Error(w, "No budget set for "+period, http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(BudgetDTO{Period: b.Period, Limit: b.Limit.String()}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	period := mux.Vars(r)["period"]
	if period == "" || period == "current" {
		period = handler.service.CurrentPeriod()
	}

	status, err := handler.service.Status(r.Context(), period)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if status == nil {
		http.Error(w, "No budget set for "+period, http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	dto := StatusDTO{
		Period:      period,
		Limit:       status.Limit.String(),
		Spent:       status.Spent.String(),
		Remaining:   status.Remaining.String(),
		PercentUsed: status.PercentUsed,
		Exceeded:    status.Exceeded,
	}
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

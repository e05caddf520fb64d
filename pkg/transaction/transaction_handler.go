package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type TransactionDTO struct {
	ID       int64  `json:"id,omitempty"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Date     string `json:"date,omitempty"`
}

type TransactionHandler struct {
	service TransactionService
}

func NewTransactionHandler(service TransactionService) *TransactionHandler {
	return &TransactionHandler{service}
}

func (handler *TransactionHandler) Add(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding new transaction")
	w.Header().Set("Content-Type", "application/json")

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tx, err := DTOToTransaction(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Add(r.Context(), tx)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(TransactionToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransactionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	transactions, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TransactionDTO, 0, len(transactions))
	for _, tx := range transactions {
		dtos = append(dtos, TransactionToDTO(tx))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}

	updated, err := handler.service.Update(r.Context(), id, Kind(dto.Type), dto.Category, amount)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TransactionToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func TransactionToDTO(tx Transaction) TransactionDTO {
	return TransactionDTO{
		ID:       tx.ID,
		Type:     string(tx.Kind),
		Category: tx.Category,
		Amount:   tx.Amount.String(),
		Date:     tx.OccurredAt.Format(TimeFormat),
	}
}

func DTOToTransaction(dto TransactionDTO) (Transaction, error) {
	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		return Transaction{}, ErrInvalidAmount
	}

	var occurredAt time.Time
	if dto.Date != "" {
		occurredAt, err = time.Parse(TimeFormat, dto.Date)
		if err != nil {
			occurredAt, err = time.Parse(DateFormat, dto.Date)
			if err != nil {
				return Transaction{}, errors.New("invalid date format")
			}
		}
	}

	return Transaction{
		ID:         dto.ID,
		Kind:       Kind(dto.Type),
		Category:   dto.Category,
		Amount:     amount,
		OccurredAt: occurredAt,
	}, nil
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidKind) || errors.Is(err, ErrMissingCategory) || errors.Is(err, ErrInvalidAmount)
}

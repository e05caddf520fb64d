package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stephenongoma/finance-tracker/internal/utils"
)

type TransactionService interface {
	Add(ctx context.Context, tx Transaction) (Transaction, error)
	// BulkAdd stores all transactions at once, e.g. after a CSV import.
	BulkAdd(ctx context.Context, txs []Transaction) ([]int64, error)
	GetAll(ctx context.Context) ([]Transaction, error)
	// Update replaces the type, category and amount of an existing transaction.
	// The id and the original occurrence time are never changed.
	Update(ctx context.Context, id int64, kind Kind, category string, amount decimal.Decimal) (Transaction, error)
	Delete(ctx context.Context, id int64) error
}

type TransactionServiceImpl struct {
	repo  TransactionRepo
	clock utils.Clock
}

func NewTransactionService(repo TransactionRepo, clock utils.Clock) *TransactionServiceImpl {
	return &TransactionServiceImpl{repo: repo, clock: clock}
}

func (s *TransactionServiceImpl) Add(ctx context.Context, tx Transaction) (Transaction, error) {
	tx.Category = strings.TrimSpace(tx.Category)
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	if tx.OccurredAt.IsZero() {
		tx.OccurredAt = s.clock.Now()
	}

	id, err := s.repo.Store(ctx, tx)
	if err != nil {
		return Transaction{}, err
	}
	tx.ID = id

	return tx, nil
}

func (s *TransactionServiceImpl) BulkAdd(ctx context.Context, txs []Transaction) ([]int64, error) {
	for i, tx := range txs {
		txs[i].Category = strings.TrimSpace(tx.Category)
		if err := txs[i].Validate(); err != nil {
			return nil, fmt.Errorf("transaction %d is invalid: %w", i+1, err)
		}
		if txs[i].OccurredAt.IsZero() {
			txs[i].OccurredAt = s.clock.Now()
		}
	}
	return s.repo.StoreAll(ctx, txs)
}

func (s *TransactionServiceImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	return s.repo.GetAll(ctx)
}

func (s *TransactionServiceImpl) Update(ctx context.Context, id int64, kind Kind, category string, amount decimal.Decimal) (Transaction, error) {
	existing, err := s.repo.FindById(ctx, id)
	if err != nil {
		return Transaction{}, err
	}
	if existing == nil {
		return Transaction{}, ErrTransactionNotFound
	}

	updated := *existing
	updated.Kind = kind
	updated.Category = strings.TrimSpace(category)
	updated.Amount = amount
	if err := updated.Validate(); err != nil {
		return Transaction{}, err
	}

	ok, err := s.repo.Update(ctx, updated)
	if err != nil {
		return Transaction{}, err
	}
	if !ok {
		log.Warnf("transaction not updated, probably because it was deleted concurrently (%d)", id)
		return Transaction{}, ErrTransactionNotFound
	}
	return updated, nil
}

func (s *TransactionServiceImpl) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTransactionNotFound
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		log.Warnf("transaction not deleted, probably because it was deleted concurrently (%d)", id)
		return ErrTransactionNotFound
	}
	return nil
}

package transaction

import (
	"context"
)

// StubTransactionRepo is an in-memory TransactionRepo for tests.
type StubTransactionRepo struct {
	transactions []Transaction
	nextId       int64
}

func NewStubTransactionRepo() *StubTransactionRepo {
	return &StubTransactionRepo{nextId: 1}
}

func (s *StubTransactionRepo) Store(ctx context.Context, tx Transaction) (int64, error) {
	tx.ID = s.nextId
	s.nextId++
	s.transactions = append(s.transactions, tx)
	return tx.ID, nil
}

func (s *StubTransactionRepo) StoreAll(ctx context.Context, txs []Transaction) ([]int64, error) {
	ids := make([]int64, 0, len(txs))
	for _, tx := range txs {
		id, _ := s.Store(ctx, tx)
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *StubTransactionRepo) GetAll(ctx context.Context) ([]Transaction, error) {
	all := make([]Transaction, len(s.transactions))
	copy(all, s.transactions)
	return all, nil
}

func (s *StubTransactionRepo) FindById(ctx context.Context, id int64) (*Transaction, error) {
	for _, tx := range s.transactions {
		if tx.ID == id {
			found := tx
			return &found, nil
		}
	}
	return nil, nil
}

func (s *StubTransactionRepo) Update(ctx context.Context, tx Transaction) (bool, error) {
	for i, existing := range s.transactions {
		if existing.ID == tx.ID {
			s.transactions[i] = tx
			return true, nil
		}
	}
	return false, nil
}

func (s *StubTransactionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	for i, existing := range s.transactions {
		if existing.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubTransactionRepo) Reset() {
	s.transactions = nil
	s.nextId = 1
}

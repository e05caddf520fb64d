package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type TransactionRepo interface {
	// Store stores a new Transaction and returns its assigned id
	Store(ctx context.Context, tx Transaction) (int64, error)
	// StoreAll stores all given Transactions in a single database transaction
	StoreAll(ctx context.Context, txs []Transaction) ([]int64, error)
	GetAll(ctx context.Context) ([]Transaction, error)
	FindById(ctx context.Context, id int64) (*Transaction, error)
	Update(ctx context.Context, tx Transaction) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type TransactionRepoImpl struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepoImpl {
	return &TransactionRepoImpl{db: db}
}

func (r TransactionRepoImpl) Store(ctx context.Context, tx Transaction) (int64, error) {
	query := `INSERT INTO transactions (type, category, amount, occurred_at) VALUES (?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		string(tx.Kind),
		tx.Category,
		tx.Amount.String(),
		tx.OccurredAt.Format(TimeFormat),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}

	return lastInsertID, nil
}

func (r TransactionRepoImpl) StoreAll(ctx context.Context, txs []Transaction) ([]int64, error) {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return nil, err
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.PrepareContext(ctx, `INSERT INTO transactions (type, category, amount, occurred_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return nil, err
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(txs))
	for _, tx := range txs {
		result, err := stmt.ExecContext(ctx,
			string(tx.Kind),
			tx.Category,
			tx.Amount.String(),
			tx.OccurredAt.Format(TimeFormat),
		)
		if err != nil {
			err := fmt.Errorf("could not execute query: %w", err)
			log.Error(err)
			return nil, err
		}
		id, err := result.LastInsertId()
		if err != nil {
			err := fmt.Errorf("could not retrieve last insert id: %w", err)
			log.Error(err)
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := dbTx.Commit(); err != nil {
		err := fmt.Errorf("could not commit transaction: %w", err)
		log.Error(err)
		return nil, err
	}

	return ids, nil
}

func (r TransactionRepoImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	query := `SELECT id, type, category, amount, occurred_at FROM transactions ORDER BY occurred_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return transactions, nil
}

func (r TransactionRepoImpl) FindById(ctx context.Context, id int64) (*Transaction, error) {
	query := `SELECT id, type, category, amount, occurred_at FROM transactions WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	tx, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Error(err)
		return nil, err
	}
	return &tx, nil
}

func (r TransactionRepoImpl) Update(ctx context.Context, tx Transaction) (bool, error) {
	query := `UPDATE transactions SET type = ?, category = ?, amount = ? WHERE id = ?`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, string(tx.Kind), tx.Category, tx.Amount.String(), tx.ID)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}

	return rowsAffected == 1, nil
}

func (r TransactionRepoImpl) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM transactions WHERE id = ?`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func scanTransaction(scan func(dest ...any) error) (Transaction, error) {
	var tx Transaction
	var kind, amount, occurredAt string
	if err := scan(&tx.ID, &kind, &tx.Category, &amount, &occurredAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Transaction{}, err
		}
		return Transaction{}, fmt.Errorf("could not scan transaction: %w", err)
	}
	tx.Kind = Kind(kind)

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return Transaction{}, fmt.Errorf("could not parse stored amount %q: %w", amount, err)
	}
	tx.Amount = parsedAmount

	parsedTime, err := time.Parse(TimeFormat, occurredAt)
	if err != nil {
		return Transaction{}, fmt.Errorf("could not parse stored timestamp %q: %w", occurredAt, err)
	}
	tx.OccurredAt = parsedTime

	return tx, nil
}

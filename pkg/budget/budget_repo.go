package budget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BudgetRepo interface {
	// Upsert stores the budget for its period, replacing any existing one.
	Upsert(ctx context.Context, b MonthlyBudget) (int64, error)
	// Find returns the budget for the given period, or nil if none is set.
	Find(ctx context.Context, period string) (*MonthlyBudget, error)
}

type BudgetRepoImpl struct {
	db *sql.DB
}

func NewBudgetRepo(db *sql.DB) *BudgetRepoImpl {
	return &BudgetRepoImpl{db: db}
}

func (r BudgetRepoImpl) Upsert(ctx context.Context, b MonthlyBudget) (int64, error) {
	query := `INSERT INTO budgets (month, amount) VALUES (?, ?)
              ON CONFLICT(month) DO UPDATE SET amount = excluded.amount`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, b.Period, b.Limit.String()); err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT id FROM budgets WHERE month = ?`, b.Period)
	var id int64
	if err := row.Scan(&id); err != nil {
		err := fmt.Errorf("could not read back budget id: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r BudgetRepoImpl) Find(ctx context.Context, period string) (*MonthlyBudget, error) {
	query := `SELECT id, month, amount FROM budgets WHERE month = ?`

	row := r.db.QueryRowContext(ctx, query, period)
	var b MonthlyBudget
	var amount string
	if err := row.Scan(&b.ID, &b.Period, &amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		err := fmt.Errorf("could not scan budget: %w", err)
		log.Error(err)
		return nil, err
	}

	limit, err := decimal.NewFromString(amount)
	if err != nil {
		err := fmt.Errorf("could not parse stored budget amount %q: %w", amount, err)
		log.Error(err)
		return nil, err
	}
	b.Limit = limit

	return &b, nil
}

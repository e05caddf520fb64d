package budget

import "context"

// StubBudgetRepo is an in-memory BudgetRepo for tests.
type StubBudgetRepo struct {
	budgets map[string]MonthlyBudget
	nextId  int64
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{budgets: map[string]MonthlyBudget{}, nextId: 1}
}

func (s *StubBudgetRepo) Upsert(ctx context.Context, b MonthlyBudget) (int64, error) {
	if existing, ok := s.budgets[b.Period]; ok {
		b.ID = existing.ID
	} else {
		b.ID = s.nextId
		s.nextId++
	}
	s.budgets[b.Period] = b
	return b.ID, nil
}

func (s *StubBudgetRepo) Find(ctx context.Context, period string) (*MonthlyBudget, error) {
	if b, ok := s.budgets[period]; ok {
		found := b
		return &found, nil
	}
	return nil, nil
}

func (s *StubBudgetRepo) Reset() {
	s.budgets = map[string]MonthlyBudget{}
	s.nextId = 1
}

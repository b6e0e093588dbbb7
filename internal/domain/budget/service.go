package budget

import "context"

// Service contains the business logic for budget operations
type Service struct {
	repo Repository
}

// NewService creates a new budget service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetBudget creates or overwrites the budget for (user, category, month, year).
// Repeated calls with the same key are idempotent upserts holding the latest
// amount; the stored spent figure is never re-derived here.
func (s *Service) SetBudget(ctx context.Context, userID int64, params SetBudgetParams) (*Budget, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, userID, params)
}

// UpdateBudget edits a budget by id after verifying ownership.
func (s *Service) UpdateBudget(ctx context.Context, budgetID string, userID int64, params UpdateBudgetParams) (*Budget, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b, err := s.repo.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBudgetNotFound
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return s.repo.Update(ctx, budgetID, params)
}

// DeleteBudget removes a budget by id after verifying ownership.
func (s *Service) DeleteBudget(ctx context.Context, budgetID string, userID int64) error {
	b, err := s.repo.GetByID(ctx, budgetID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBudgetNotFound
	}
	if b.UserID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, budgetID)
}

// ListMonthly retrieves all budgets for one calendar month. Straight filter,
// no aggregation.
func (s *Service) ListMonthly(ctx context.Context, userID int64, month, year int) ([]*Budget, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	if year <= 0 {
		return nil, ErrInvalidYear
	}
	return s.repo.ListByUserMonthYear(ctx, userID, month, year)
}

// ListAll retrieves every budget for a user, for export listings.
func (s *Service) ListAll(ctx context.Context, userID int64) ([]*Budget, error) {
	return s.repo.ListByUserID(ctx, userID)
}

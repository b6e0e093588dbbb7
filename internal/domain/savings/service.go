package savings

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"finwise/internal/domain/ledger"
)

// TransferResult pairs the two halves of a completed savings transfer.
type TransferResult struct {
	Goal  *Goal         `json:"goal"`
	Entry *ledger.Entry `json:"entry"`
}

// Service contains the business logic for savings goal operations
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new savings service
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateGoal creates a goal with a zero current amount.
func (s *Service) CreateGoal(ctx context.Context, userID int64, params CreateGoalParams) (*Goal, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, userID, params)
}

// GetGoal retrieves a goal by ID and verifies user ownership.
func (s *Service) GetGoal(ctx context.Context, goalID string, userID int64) (*Goal, error) {
	goal, err := s.repo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}
	if goal.UserID != userID {
		return nil, ErrForbidden
	}
	return goal, nil
}

// ListGoals retrieves all goals for a user, newest first.
func (s *Service) ListGoals(ctx context.Context, userID int64) ([]*Goal, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// AddFunds bumps the goal balance without recording a ledger entry.
func (s *Service) AddFunds(ctx context.Context, goalID string, userID int64, amount decimal.Decimal) (*Goal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, err := s.GetGoal(ctx, goalID, userID); err != nil {
		return nil, err
	}
	return s.repo.AddFunds(ctx, goalID, amount)
}

// TransferToGoal moves money into a goal and mirrors it as a "Savings"
// expense in the ledger. The two writes commit atomically; a failed ledger
// write rolls back the balance increment and surfaces the error instead of
// letting the two sides diverge.
func (s *Service) TransferToGoal(ctx context.Context, goalID string, userID int64, amount decimal.Decimal, description string) (*TransferResult, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	goal, err := s.GetGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	desc := "Transfer to " + goal.GoalName
	if description != "" {
		desc += " - " + description
	}

	updated, entry, err := s.repo.Transfer(ctx, TransferParams{
		GoalID:          goalID,
		UserID:          userID,
		Amount:          amount,
		Category:        ledger.SavingsCategory,
		Description:     desc,
		TransactionDate: s.now().Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}
	return &TransferResult{Goal: updated, Entry: entry}, nil
}

// UpdateGoal edits a goal after verifying ownership.
func (s *Service) UpdateGoal(ctx context.Context, goalID string, userID int64, params UpdateGoalParams) (*Goal, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetGoal(ctx, goalID, userID); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, goalID, params)
}

// DeleteGoal removes a goal after verifying ownership. Ledger entries
// created by past transfers stay in place.
func (s *Service) DeleteGoal(ctx context.Context, goalID string, userID int64) error {
	if _, err := s.GetGoal(ctx, goalID, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, goalID)
}

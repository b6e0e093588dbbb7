package savings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finwise/internal/domain/ledger"
)

// MockRepository is a mock implementation of Repository interface
type MockRepository struct {
	CreateFunc       func(ctx context.Context, userID int64, params CreateGoalParams) (*Goal, error)
	GetByIDFunc      func(ctx context.Context, id string) (*Goal, error)
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*Goal, error)
	AddFundsFunc     func(ctx context.Context, id string, amount decimal.Decimal) (*Goal, error)
	TransferFunc     func(ctx context.Context, params TransferParams) (*Goal, *ledger.Entry, error)
	UpdateFunc       func(ctx context.Context, id string, params UpdateGoalParams) (*Goal, error)
	DeleteFunc       func(ctx context.Context, id string) error
}

func (m *MockRepository) Create(ctx context.Context, userID int64, params CreateGoalParams) (*Goal, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, params)
	}
	return nil, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Goal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRepository) ListByUserID(ctx context.Context, userID int64) ([]*Goal, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockRepository) AddFunds(ctx context.Context, id string, amount decimal.Decimal) (*Goal, error) {
	if m.AddFundsFunc != nil {
		return m.AddFundsFunc(ctx, id, amount)
	}
	return nil, nil
}

func (m *MockRepository) Transfer(ctx context.Context, params TransferParams) (*Goal, *ledger.Entry, error) {
	if m.TransferFunc != nil {
		return m.TransferFunc(ctx, params)
	}
	return nil, nil, nil
}

func (m *MockRepository) Update(ctx context.Context, id string, params UpdateGoalParams) (*Goal, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func vacationGoal() *Goal {
	return &Goal{
		ID:            "goal-1",
		UserID:        1,
		GoalName:      "Vacation",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(100),
	}
}

func TestTransferToGoalDualWrite(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(300)

	var got TransferParams
	repo := &MockRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*Goal, error) {
			return vacationGoal(), nil
		},
		TransferFunc: func(ctx context.Context, params TransferParams) (*Goal, *ledger.Entry, error) {
			got = params
			goal := vacationGoal()
			goal.CurrentAmount = goal.CurrentAmount.Add(params.Amount)
			entry := &ledger.Entry{
				ID:              "entry-1",
				UserID:          params.UserID,
				Kind:            ledger.KindExpense,
				Amount:          params.Amount,
				Category:        params.Category,
				Description:     params.Description,
				TransactionDate: params.TransactionDate,
			}
			return goal, entry, nil
		},
	}
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC) }

	res, err := svc.TransferToGoal(ctx, "goal-1", 1, amount, "vacation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Category != ledger.SavingsCategory {
		t.Errorf("mirrored expense category = %q, want %q", got.Category, ledger.SavingsCategory)
	}
	if got.Description != "Transfer to Vacation - vacation" {
		t.Errorf("description = %q", got.Description)
	}
	if got.TransactionDate != "2024-01-15" {
		t.Errorf("transaction date = %q, want 2024-01-15", got.TransactionDate)
	}
	if !got.Amount.Equal(amount) {
		t.Errorf("transfer amount = %s, want %s", got.Amount, amount)
	}
	if !res.Goal.CurrentAmount.Equal(decimal.NewFromInt(400)) {
		t.Errorf("goal balance = %s, want 400", res.Goal.CurrentAmount)
	}
	if res.Entry.Kind != ledger.KindExpense || !res.Entry.Amount.Equal(amount) {
		t.Errorf("mirrored entry = %+v", res.Entry)
	}
}

func TestTransferToGoalDescriptionDefault(t *testing.T) {
	repo := &MockRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*Goal, error) {
			return vacationGoal(), nil
		},
		TransferFunc: func(ctx context.Context, params TransferParams) (*Goal, *ledger.Entry, error) {
			if params.Description != "Transfer to Vacation" {
				t.Errorf("description = %q, want bare goal form", params.Description)
			}
			return vacationGoal(), &ledger.Entry{}, nil
		},
	}
	svc := NewService(repo)

	if _, err := svc.TransferToGoal(context.Background(), "goal-1", 1, decimal.NewFromInt(50), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransferToGoalFailuresSurface(t *testing.T) {
	ctx := context.Background()
	storageErr := errors.New("insert failed: connection reset")

	tests := []struct {
		name    string
		goal    *Goal
		userID  int64
		amount  decimal.Decimal
		repoErr error
		wantErr error
	}{
		{
			name:    "GoalMissing",
			goal:    nil,
			userID:  1,
			amount:  decimal.NewFromInt(10),
			wantErr: ErrGoalNotFound,
		},
		{
			name:    "WrongOwner",
			goal:    vacationGoal(),
			userID:  2,
			amount:  decimal.NewFromInt(10),
			wantErr: ErrForbidden,
		},
		{
			name:    "ZeroAmount",
			goal:    vacationGoal(),
			userID:  1,
			amount:  decimal.Zero,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "StorageFailurePropagates",
			goal:    vacationGoal(),
			userID:  1,
			amount:  decimal.NewFromInt(10),
			repoErr: storageErr,
			wantErr: storageErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*Goal, error) {
					return tt.goal, nil
				},
				TransferFunc: func(ctx context.Context, params TransferParams) (*Goal, *ledger.Entry, error) {
					return nil, nil, tt.repoErr
				},
			}
			svc := NewService(repo)

			_, err := svc.TransferToGoal(ctx, "goal-1", tt.userID, tt.amount, "")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAddFundsWritesNoLedgerEntry(t *testing.T) {
	repo := &MockRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*Goal, error) {
			return vacationGoal(), nil
		},
		AddFundsFunc: func(ctx context.Context, id string, amount decimal.Decimal) (*Goal, error) {
			goal := vacationGoal()
			goal.CurrentAmount = goal.CurrentAmount.Add(amount)
			return goal, nil
		},
		TransferFunc: func(ctx context.Context, params TransferParams) (*Goal, *ledger.Entry, error) {
			t.Error("AddFunds must not go through the transfer dual-write")
			return nil, nil, nil
		},
	}
	svc := NewService(repo)

	goal, err := svc.AddFunds(context.Background(), "goal-1", 1, decimal.NewFromInt(25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !goal.CurrentAmount.Equal(decimal.NewFromInt(125)) {
		t.Errorf("balance = %s, want 125", goal.CurrentAmount)
	}
}

func TestAddFundsRejectsNonPositiveAmount(t *testing.T) {
	repo := &MockRepository{
		AddFundsFunc: func(ctx context.Context, id string, amount decimal.Decimal) (*Goal, error) {
			t.Error("repository must not be reached for a non-positive amount")
			return nil, nil
		},
	}
	svc := NewService(repo)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		if _, err := svc.AddFunds(context.Background(), "goal-1", 1, amount); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("AddFunds(%s) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestDeleteGoalWrongOwner(t *testing.T) {
	repo := &MockRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*Goal, error) {
			return vacationGoal(), nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			t.Error("delete must not run for a foreign goal")
			return nil
		},
	}
	svc := NewService(repo)

	if err := svc.DeleteGoal(context.Background(), "goal-1", 42); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	svc := NewService(&MockRepository{})

	_, err := svc.CreateGoal(context.Background(), 1, CreateGoalParams{GoalName: "", TargetAmount: decimal.NewFromInt(100)})
	if !errors.Is(err, ErrEmptyGoalName) {
		t.Fatalf("expected ErrEmptyGoalName, got %v", err)
	}

	_, err = svc.CreateGoal(context.Background(), 1, CreateGoalParams{GoalName: "Car", TargetAmount: decimal.NewFromInt(-5)})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

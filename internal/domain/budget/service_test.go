package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// MockRepository is a mock implementation of Repository interface
type MockRepository struct {
	UpsertFunc              func(ctx context.Context, userID int64, params SetBudgetParams) (*Budget, error)
	GetByIDFunc             func(ctx context.Context, id string) (*Budget, error)
	ListByUserMonthYearFunc func(ctx context.Context, userID int64, month, year int) ([]*Budget, error)
	ListByUserIDFunc        func(ctx context.Context, userID int64) ([]*Budget, error)
	UpdateFunc              func(ctx context.Context, id string, params UpdateBudgetParams) (*Budget, error)
	DeleteFunc              func(ctx context.Context, id string) error
}

func (m *MockRepository) Upsert(ctx context.Context, userID int64, params SetBudgetParams) (*Budget, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, userID, params)
	}
	return nil, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Budget, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRepository) ListByUserMonthYear(ctx context.Context, userID int64, month, year int) ([]*Budget, error) {
	if m.ListByUserMonthYearFunc != nil {
		return m.ListByUserMonthYearFunc(ctx, userID, month, year)
	}
	return nil, nil
}

func (m *MockRepository) ListByUserID(ctx context.Context, userID int64) ([]*Budget, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockRepository) Update(ctx context.Context, id string, params UpdateBudgetParams) (*Budget, error) {
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

// fakeStore backs the upsert tests with an actual keyed store so repeated
// SetBudget calls exercise the natural-key semantics end to end.
type fakeStore struct {
	rows map[[4]interface{}]*Budget
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[[4]interface{}]*Budget)}
}

func (f *fakeStore) upsert(userID int64, params SetBudgetParams) *Budget {
	key := [4]interface{}{userID, params.Category, params.Month, params.Year}
	if b, ok := f.rows[key]; ok {
		b.BudgetAmount = params.Amount
		return b
	}
	b := &Budget{
		ID:           params.Category + "-new",
		UserID:       userID,
		Category:     params.Category,
		Month:        params.Month,
		Year:         params.Year,
		BudgetAmount: params.Amount,
		SpentAmount:  decimal.Zero,
	}
	f.rows[key] = b
	return b
}

func TestSetBudgetUpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	repo := &MockRepository{
		UpsertFunc: func(ctx context.Context, userID int64, params SetBudgetParams) (*Budget, error) {
			return store.upsert(userID, params), nil
		},
	}
	svc := NewService(repo)

	first := SetBudgetParams{Category: "Food", Month: 5, Year: 2024, Amount: decimal.NewFromInt(200)}
	second := SetBudgetParams{Category: "Food", Month: 5, Year: 2024, Amount: decimal.NewFromInt(350)}

	if _, err := svc.SetBudget(ctx, 1, first); err != nil {
		t.Fatalf("first SetBudget: %v", err)
	}
	b, err := svc.SetBudget(ctx, 1, second)
	if err != nil {
		t.Fatalf("second SetBudget: %v", err)
	}

	if len(store.rows) != 1 {
		t.Fatalf("expected exactly one row for the natural key, got %d", len(store.rows))
	}
	if !b.BudgetAmount.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected latest amount 350, got %s", b.BudgetAmount)
	}
	if !b.SpentAmount.Equal(decimal.Zero) {
		t.Errorf("new budget must start with zero spent amount, got %s", b.SpentAmount)
	}
}

func TestSetBudgetValidation(t *testing.T) {
	tests := []struct {
		name    string
		params  SetBudgetParams
		wantErr error
	}{
		{
			name:    "MonthTooLarge",
			params:  SetBudgetParams{Category: "Food", Month: 13, Year: 2024, Amount: decimal.NewFromInt(10)},
			wantErr: ErrInvalidMonth,
		},
		{
			name:    "MonthZero",
			params:  SetBudgetParams{Category: "Food", Month: 0, Year: 2024, Amount: decimal.NewFromInt(10)},
			wantErr: ErrInvalidMonth,
		},
		{
			name:    "EmptyCategory",
			params:  SetBudgetParams{Category: " ", Month: 5, Year: 2024, Amount: decimal.NewFromInt(10)},
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "NegativeAmount",
			params:  SetBudgetParams{Category: "Food", Month: 5, Year: 2024, Amount: decimal.NewFromInt(-10)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "YearZero",
			params:  SetBudgetParams{Category: "Food", Month: 5, Year: 0, Amount: decimal.NewFromInt(10)},
			wantErr: ErrInvalidYear,
		},
	}

	svc := NewService(&MockRepository{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.SetBudget(context.Background(), 1, tt.params); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDeleteBudgetOwnership(t *testing.T) {
	ctx := context.Background()
	stored := &Budget{ID: "b-1", UserID: 1, Category: "Food", Month: 5, Year: 2024}

	tests := []struct {
		name    string
		id      string
		userID  int64
		stored  *Budget
		wantErr error
	}{
		{name: "Success", id: "b-1", userID: 1, stored: stored},
		{name: "NotFound", id: "missing", userID: 1, stored: nil, wantErr: ErrBudgetNotFound},
		{name: "WrongOwner", id: "b-1", userID: 2, stored: stored, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			repo := &MockRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*Budget, error) {
					return tt.stored, nil
				},
				DeleteFunc: func(ctx context.Context, id string) error {
					deleted = true
					return nil
				},
			}
			svc := NewService(repo)

			err := svc.DeleteBudget(ctx, tt.id, tt.userID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if deleted {
					t.Error("row must stay untouched when the ownership check fails")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !deleted {
				t.Error("expected repository delete to run")
			}
		})
	}
}

func TestUpdateBudgetWrongOwner(t *testing.T) {
	repo := &MockRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*Budget, error) {
			return &Budget{ID: id, UserID: 1}, nil
		},
		UpdateFunc: func(ctx context.Context, id string, params UpdateBudgetParams) (*Budget, error) {
			t.Error("update must not run for a foreign budget")
			return nil, nil
		},
	}
	svc := NewService(repo)

	amount := decimal.NewFromInt(500)
	_, err := svc.UpdateBudget(context.Background(), "b-1", 99, UpdateBudgetParams{BudgetAmount: &amount})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestListMonthlyValidatesMonth(t *testing.T) {
	svc := NewService(&MockRepository{})
	if _, err := svc.ListMonthly(context.Background(), 1, 0, 2024); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

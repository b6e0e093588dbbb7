package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"finwise/internal/domain/budget"
	"finwise/internal/domain/ledger"
	"finwise/internal/domain/savings"
)

type MockBudgetRepo struct {
	UpsertFunc              func(ctx context.Context, userID int64, params budget.SetBudgetParams) (*budget.Budget, error)
	GetByIDFunc             func(ctx context.Context, id string) (*budget.Budget, error)
	ListByUserMonthYearFunc func(ctx context.Context, userID int64, month, year int) ([]*budget.Budget, error)
	ListByUserIDFunc        func(ctx context.Context, userID int64) ([]*budget.Budget, error)
	UpdateFunc              func(ctx context.Context, id string, params budget.UpdateBudgetParams) (*budget.Budget, error)
	DeleteFunc              func(ctx context.Context, id string) error
}

func (m *MockBudgetRepo) Upsert(ctx context.Context, userID int64, params budget.SetBudgetParams) (*budget.Budget, error) {
	return m.UpsertFunc(ctx, userID, params)
}

func (m *MockBudgetRepo) GetByID(ctx context.Context, id string) (*budget.Budget, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockBudgetRepo) ListByUserMonthYear(ctx context.Context, userID int64, month, year int) ([]*budget.Budget, error) {
	return m.ListByUserMonthYearFunc(ctx, userID, month, year)
}

func (m *MockBudgetRepo) ListByUserID(ctx context.Context, userID int64) ([]*budget.Budget, error) {
	return m.ListByUserIDFunc(ctx, userID)
}

func (m *MockBudgetRepo) Update(ctx context.Context, id string, params budget.UpdateBudgetParams) (*budget.Budget, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *MockBudgetRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func TestHandleExportCSV(t *testing.T) {
	ledgerRepo := &MockLedgerRepo{
		ListByUserIDFunc: func(ctx context.Context, userID int64) ([]*ledger.Entry, error) {
			return []*ledger.Entry{
				{ID: "e-1", UserID: userID, Kind: ledger.KindExpense, Amount: decimal.NewFromInt(42), Category: "Food", Description: "Groceries", TransactionDate: "2024-01-15"},
			}, nil
		},
	}
	budgetRepo := &MockBudgetRepo{
		ListByUserIDFunc: func(ctx context.Context, userID int64) ([]*budget.Budget, error) {
			return []*budget.Budget{
				{ID: "b-1", UserID: userID, Category: "Food", Month: 1, Year: 2024, BudgetAmount: decimal.NewFromInt(400), SpentAmount: decimal.NewFromInt(42)},
			}, nil
		},
	}
	savingsRepo := &MockSavingsRepo{
		ListByUserIDFunc: func(ctx context.Context, userID int64) ([]*savings.Goal, error) {
			return []*savings.Goal{
				{ID: "g-1", UserID: userID, GoalName: "Vacation", TargetAmount: decimal.NewFromInt(2000), CurrentAmount: decimal.NewFromInt(300)},
			}, nil
		},
	}

	handler := NewExportHandler(
		ledger.NewService(ledgerRepo),
		budget.NewService(budgetRepo),
		savings.NewService(savingsRepo),
	)

	req := authedRequest(http.MethodGet, "/api/entries/export", nil, 1)
	rr := httptest.NewRecorder()
	handler.HandleExportCSV(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}

	body := rr.Body.String()
	for _, want := range []string{
		"entries\n",
		"e-1,expense,42,Food,Groceries,2024-01-15",
		"budgets\n",
		"b-1,Food,1,2024,400,42",
		"goals\n",
		"g-1,Vacation,2000,300",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("export body missing %q\nbody:\n%s", want, body)
		}
	}
}

func TestHandleExportCSVRequiresGet(t *testing.T) {
	handler := NewExportHandler(nil, nil, nil)

	req := authedRequest(http.MethodPost, "/api/entries/export", nil, 1)
	rr := httptest.NewRecorder()
	handler.HandleExportCSV(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"finwise/internal/domain/ledger"
	"finwise/internal/shared/middleware"
)

type MockLedgerRepo struct {
	CreateFunc              func(ctx context.Context, userID int64, params ledger.CreateEntryParams) (*ledger.Entry, error)
	GetByIDFunc             func(ctx context.Context, id string) (*ledger.Entry, error)
	ListByUserIDFunc        func(ctx context.Context, userID int64) ([]*ledger.Entry, error)
	ListByUserIDAndKindFunc func(ctx context.Context, userID int64, kind ledger.Kind) ([]*ledger.Entry, error)
	UpdateFunc              func(ctx context.Context, id string, params ledger.UpdateEntryParams) (*ledger.Entry, error)
	DeleteFunc              func(ctx context.Context, id string) error
	DeleteAllByUserIDFunc   func(ctx context.Context, userID int64) error
}

func (m *MockLedgerRepo) Create(ctx context.Context, userID int64, params ledger.CreateEntryParams) (*ledger.Entry, error) {
	return m.CreateFunc(ctx, userID, params)
}

func (m *MockLedgerRepo) GetByID(ctx context.Context, id string) (*ledger.Entry, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockLedgerRepo) ListByUserID(ctx context.Context, userID int64) ([]*ledger.Entry, error) {
	return m.ListByUserIDFunc(ctx, userID)
}

func (m *MockLedgerRepo) ListByUserIDAndKind(ctx context.Context, userID int64, kind ledger.Kind) ([]*ledger.Entry, error) {
	return m.ListByUserIDAndKindFunc(ctx, userID, kind)
}

func (m *MockLedgerRepo) Update(ctx context.Context, id string, params ledger.UpdateEntryParams) (*ledger.Entry, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *MockLedgerRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func (m *MockLedgerRepo) DeleteAllByUserID(ctx context.Context, userID int64) error {
	return m.DeleteAllByUserIDFunc(ctx, userID)
}

func authedRequest(method, target string, body []byte, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestHandleExpensesCreate(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		mockRepo       func() *MockLedgerRepo
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]interface{}{
				"amount":          "42.50",
				"category":        "Food",
				"description":     "Groceries",
				"transactionDate": "2024-01-15",
			},
			mockRepo: func() *MockLedgerRepo {
				return &MockLedgerRepo{
					CreateFunc: func(ctx context.Context, userID int64, params ledger.CreateEntryParams) (*ledger.Entry, error) {
						if params.Kind != ledger.KindExpense {
							t.Errorf("kind = %s, want %s", params.Kind, ledger.KindExpense)
						}
						return &ledger.Entry{ID: "e-1", UserID: userID, Kind: params.Kind, Amount: params.Amount, Category: params.Category}, nil
					},
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Negative Amount",
			body: map[string]interface{}{
				"amount":   "-5",
				"category": "Food",
			},
			mockRepo:       func() *MockLedgerRepo { return &MockLedgerRepo{} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing Category",
			body: map[string]interface{}{
				"amount": "10",
			},
			mockRepo:       func() *MockLedgerRepo { return &MockLedgerRepo{} },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewLedgerHandler(ledger.NewService(tt.mockRepo()))

			bodyBytes, _ := json.Marshal(tt.body)
			req := authedRequest(http.MethodPost, "/api/expenses", bodyBytes, 1)

			rr := httptest.NewRecorder()
			handler.HandleExpenses(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tt.expectedStatus)
			}
		})
	}
}

func TestHandleIncomesList(t *testing.T) {
	repo := &MockLedgerRepo{
		ListByUserIDAndKindFunc: func(ctx context.Context, userID int64, kind ledger.Kind) ([]*ledger.Entry, error) {
			if kind != ledger.KindIncome {
				t.Errorf("kind = %s, want %s", kind, ledger.KindIncome)
			}
			return []*ledger.Entry{
				{ID: "e-1", UserID: userID, Kind: ledger.KindIncome, Amount: decimal.NewFromInt(1000), Category: "Salary"},
			}, nil
		},
	}
	handler := NewLedgerHandler(ledger.NewService(repo))

	req := authedRequest(http.MethodGet, "/api/incomes", nil, 1)
	rr := httptest.NewRecorder()
	handler.HandleIncomes(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var entries []*ledger.Entry
	if err := json.Unmarshal(rr.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(entries) != 1 || entries[0].Category != "Salary" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestHandleEntryByIDDelete(t *testing.T) {
	tests := []struct {
		name           string
		entryID        string
		userID         int64
		mockRepo       func() *MockLedgerRepo
		expectedStatus int
	}{
		{
			name:    "Success",
			entryID: "e-1",
			userID:  1,
			mockRepo: func() *MockLedgerRepo {
				return &MockLedgerRepo{
					GetByIDFunc: func(ctx context.Context, id string) (*ledger.Entry, error) {
						return &ledger.Entry{ID: "e-1", UserID: 1}, nil
					},
					DeleteFunc: func(ctx context.Context, id string) error { return nil },
				}
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:    "Forbidden",
			entryID: "e-1",
			userID:  2,
			mockRepo: func() *MockLedgerRepo {
				return &MockLedgerRepo{
					GetByIDFunc: func(ctx context.Context, id string) (*ledger.Entry, error) {
						return &ledger.Entry{ID: "e-1", UserID: 1}, nil
					},
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "Not Found",
			entryID: "missing",
			userID:  1,
			mockRepo: func() *MockLedgerRepo {
				return &MockLedgerRepo{
					GetByIDFunc: func(ctx context.Context, id string) (*ledger.Entry, error) {
						return nil, nil
					},
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewLedgerHandler(ledger.NewService(tt.mockRepo()))

			req := authedRequest(http.MethodDelete, "/api/entries/"+tt.entryID, nil, tt.userID)
			rr := httptest.NewRecorder()
			handler.HandleEntryByID(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tt.expectedStatus)
			}
		})
	}
}

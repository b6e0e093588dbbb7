package budget

import "context"

// Repository defines the interface for budget data access.
// This interface is defined in the domain layer, but implemented in the
// infrastructure layer.
type Repository interface {
	// Upsert creates or overwrites the budget identified by the natural
	// key (userID, category, month, year). Implementations must be atomic
	// against concurrent upserts of the same key: the store enforces a
	// uniqueness constraint and resolves conflicts as an update, so
	// check-then-insert races cannot produce duplicate rows. A new row
	// starts with a zero spent amount; an existing row keeps its value.
	Upsert(ctx context.Context, userID int64, params SetBudgetParams) (*Budget, error)

	// GetByID retrieves a budget by its ID
	GetByID(ctx context.Context, id string) (*Budget, error)

	// ListByUserMonthYear retrieves all budgets for one calendar month
	ListByUserMonthYear(ctx context.Context, userID int64, month, year int) ([]*Budget, error)

	// ListByUserID retrieves all budgets for a user
	ListByUserID(ctx context.Context, userID int64) ([]*Budget, error)

	// Update edits an existing budget
	Update(ctx context.Context, id string, params UpdateBudgetParams) (*Budget, error)

	// Delete removes a budget
	Delete(ctx context.Context, id string) error
}

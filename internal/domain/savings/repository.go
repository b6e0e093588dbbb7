package savings

import (
	"context"

	"github.com/shopspring/decimal"

	"finwise/internal/domain/ledger"
)

// Repository defines the interface for savings goal data access.
// This interface is defined in the domain layer, but implemented in the
// infrastructure layer.
type Repository interface {
	// Create creates a new goal with a zero current amount
	Create(ctx context.Context, userID int64, params CreateGoalParams) (*Goal, error)

	// GetByID retrieves a goal by its ID
	GetByID(ctx context.Context, id string) (*Goal, error)

	// ListByUserID retrieves all goals for a user, most recently created first
	ListByUserID(ctx context.Context, userID int64) ([]*Goal, error)

	// AddFunds increments the goal balance. It does NOT write a ledger
	// entry; that is what distinguishes a balance bump from a transfer.
	AddFunds(ctx context.Context, id string, amount decimal.Decimal) (*Goal, error)

	// Transfer atomically increments the goal balance and appends the
	// mirrored expense entry. Implementations must commit both writes in
	// one transaction: a failure of either rolls back the other, and no
	// concurrent reader may observe one without the other.
	Transfer(ctx context.Context, params TransferParams) (*Goal, *ledger.Entry, error)

	// Update edits an existing goal
	Update(ctx context.Context, id string, params UpdateGoalParams) (*Goal, error)

	// Delete removes a goal. No cascading ledger changes.
	Delete(ctx context.Context, id string) error
}

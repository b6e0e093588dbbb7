package user

import "context"

// Repository defines the interface for user data access.
// This interface is defined in the domain layer, but implemented in the
// infrastructure layer.
type Repository interface {
	// Create registers a new user
	Create(ctx context.Context, params CreateParams) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id int64) (*User, error)

	// PurgeFinanceData deletes the user's ledger entries, budgets and
	// savings goals in one transaction. The cascade is all-or-nothing:
	// no reader may observe a half-reset account.
	PurgeFinanceData(ctx context.Context, userID int64) error

	// DeleteAccount runs the purge cascade and removes the user row
	// itself, all in one transaction.
	DeleteAccount(ctx context.Context, userID int64) error
}

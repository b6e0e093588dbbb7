package ledger

import "context"

// Repository defines the interface for ledger data access.
// This interface is defined in the domain layer, but implemented in the
// infrastructure layer.
type Repository interface {
	// Create appends a new entry for the user
	Create(ctx context.Context, userID int64, params CreateEntryParams) (*Entry, error)

	// GetByID retrieves an entry by its ID
	GetByID(ctx context.Context, id string) (*Entry, error)

	// ListByUserID retrieves all entries for a user, most recently created first
	ListByUserID(ctx context.Context, userID int64) ([]*Entry, error)

	// ListByUserIDAndKind retrieves entries of one kind, most recently created first
	ListByUserIDAndKind(ctx context.Context, userID int64, kind Kind) ([]*Entry, error)

	// Update edits an existing entry
	Update(ctx context.Context, id string, params UpdateEntryParams) (*Entry, error)

	// Delete removes a single entry
	Delete(ctx context.Context, id string) error

	// DeleteAllByUserID removes every entry owned by the user in one
	// atomic statement. It participates in the account reset cascade.
	DeleteAllByUserID(ctx context.Context, userID int64) error
}

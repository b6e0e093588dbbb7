package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service contains the business logic for ledger operations
type Service struct {
	repo Repository
}

// NewService creates a new ledger service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordIncome appends an income entry for the user.
func (s *Service) RecordIncome(ctx context.Context, userID int64, amount decimal.Decimal, category, description, transactionDate string) (*Entry, error) {
	return s.record(ctx, userID, KindIncome, amount, category, description, transactionDate)
}

// RecordExpense appends an expense entry for the user.
func (s *Service) RecordExpense(ctx context.Context, userID int64, amount decimal.Decimal, category, description, transactionDate string) (*Entry, error) {
	return s.record(ctx, userID, KindExpense, amount, category, description, transactionDate)
}

func (s *Service) record(ctx context.Context, userID int64, kind Kind, amount decimal.Decimal, category, description, transactionDate string) (*Entry, error) {
	params := CreateEntryParams{
		Kind:            kind,
		Amount:          amount,
		Category:        category,
		Description:     description,
		TransactionDate: transactionDate,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, userID, params)
}

// ListEntries retrieves all entries for a user, newest first.
func (s *Service) ListEntries(ctx context.Context, userID int64) ([]*Entry, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// ListByKind retrieves only income or only expense entries, newest first.
func (s *Service) ListByKind(ctx context.Context, userID int64, kind Kind) ([]*Entry, error) {
	if !IsValidKind(kind) {
		return nil, ErrInvalidKind
	}
	return s.repo.ListByUserIDAndKind(ctx, userID, kind)
}

// UpdateEntry edits an entry after verifying ownership.
func (s *Service) UpdateEntry(ctx context.Context, entryID string, userID int64, params UpdateEntryParams) (*Entry, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	if entry.UserID != userID {
		return nil, ErrForbidden
	}
	return s.repo.Update(ctx, entryID, params)
}

// DeleteEntry removes an entry after verifying ownership.
func (s *Service) DeleteEntry(ctx context.Context, entryID string, userID int64) error {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrEntryNotFound
	}
	if entry.UserID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, entryID)
}

// DeleteAllForUser removes every entry owned by the user.
func (s *Service) DeleteAllForUser(ctx context.Context, userID int64) error {
	return s.repo.DeleteAllByUserID(ctx, userID)
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"finwise/internal/domain/ledger"
)

type LedgerRepository struct {
	db *DB
}

func NewLedgerRepository(db *DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

const ledgerColumns = "id, user_id, kind, amount, category, description, transaction_date, created_at"

func scanEntry(row interface{ Scan(...any) error }) (*ledger.Entry, error) {
	var e ledger.Entry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Kind, &e.Amount,
		&e.Category, &e.Description, &e.TransactionDate, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *LedgerRepository) Create(ctx context.Context, userID int64, params ledger.CreateEntryParams) (*ledger.Entry, error) {
	query := `
		INSERT INTO ledger_entries (id, user_id, kind, amount, category, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + ledgerColumns

	entry, err := scanEntry(r.db.QueryRowContext(
		ctx, query,
		uuid.NewString(), userID, params.Kind, params.Amount,
		params.Category, params.Description, params.TransactionDate,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return entry, nil
}

func (r *LedgerRepository) GetByID(ctx context.Context, id string) (*ledger.Entry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return entry, nil
}

func (r *LedgerRepository) ListByUserID(ctx context.Context, userID int64) ([]*ledger.Entry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *LedgerRepository) ListByUserIDAndKind(ctx context.Context, userID int64, kind ledger.Kind) ([]*ledger.Entry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE user_id = $1 AND kind = $2
		ORDER BY created_at DESC`

	return r.list(ctx, query, userID, kind)
}

func (r *LedgerRepository) list(ctx context.Context, query string, args ...any) ([]*ledger.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}
	return entries, nil
}

func (r *LedgerRepository) Update(ctx context.Context, id string, params ledger.UpdateEntryParams) (*ledger.Entry, error) {
	setClauses := []string{}
	args := []any{}
	argPos := 1

	addSet := func(col string, val any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argPos))
		args = append(args, val)
		argPos++
	}

	if params.Amount != nil {
		addSet("amount", *params.Amount)
	}
	if params.Category != nil {
		addSet("category", *params.Category)
	}
	if params.Description != nil {
		addSet("description", *params.Description)
	}
	if params.TransactionDate != nil {
		addSet("transaction_date", *params.TransactionDate)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(
		"UPDATE ledger_entries SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argPos, ledgerColumns,
	)
	args = append(args, id)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ledger.ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}
	return entry, nil
}

func (r *LedgerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ledger.ErrEntryNotFound
	}
	return nil
}

// DeleteAllByUserID removes every entry for the user. A single DELETE is
// atomic per owner, so a reset observes all rows gone or none.
func (r *LedgerRepository) DeleteAllByUserID(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ledger_entries WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete ledger entries: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"finwise/internal/domain/user"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, email, name, password_hash, created_at"

func scanUser(row interface{ Scan(...any) error }) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, params user.CreateParams) (*user.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, params.Email, params.Name, params.PasswordHash))
	if err != nil {
		// 23505 is unique_violation; the only unique column is email
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// PurgeFinanceData removes the user's ledger entries, budgets and savings
// goals in one transaction, so a reset is observed fully applied or not
// at all.
func (r *UserRepository) PurgeFinanceData(ctx context.Context, userID int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return purgeFinanceRows(ctx, tx, userID)
	})
}

// DeleteAccount runs the purge cascade and removes the user row itself.
func (r *UserRepository) DeleteAccount(ctx context.Context, userID int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := purgeFinanceRows(ctx, tx, userID); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return user.ErrUserNotFound
		}
		return nil
	})
}

func purgeFinanceRows(ctx context.Context, tx *sql.Tx, userID int64) error {
	for _, table := range []string{"ledger_entries", "budgets", "savings_goals"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE user_id = $1", table), userID); err != nil {
			return fmt.Errorf("failed to purge %s: %w", table, err)
		}
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"finwise/internal/domain/budget"
)

type BudgetRepository struct {
	db *DB
}

func NewBudgetRepository(db *DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

const budgetColumns = "id, user_id, category, month, year, budget_amount, spent_amount, updated_at"

func scanBudget(row interface{ Scan(...any) error }) (*budget.Budget, error) {
	var b budget.Budget
	err := row.Scan(
		&b.ID, &b.UserID, &b.Category, &b.Month, &b.Year,
		&b.BudgetAmount, &b.SpentAmount, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Upsert resolves the natural-key race at the store: the unique index on
// (user_id, category, month, year) plus ON CONFLICT turns concurrent
// check-then-insert calls into last-writer-wins updates. An existing row
// keeps its spent_amount; only the cap and updated_at change.
func (r *BudgetRepository) Upsert(ctx context.Context, userID int64, params budget.SetBudgetParams) (*budget.Budget, error) {
	query := `
		INSERT INTO budgets (id, user_id, category, month, year, budget_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, category, month, year)
		DO UPDATE SET budget_amount = EXCLUDED.budget_amount, updated_at = now()
		RETURNING ` + budgetColumns

	b, err := scanBudget(r.db.QueryRowContext(
		ctx, query,
		uuid.NewString(), userID, params.Category, params.Month, params.Year, params.Amount,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}
	return b, nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id string) (*budget.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE id = $1`

	b, err := scanBudget(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return b, nil
}

func (r *BudgetRepository) ListByUserMonthYear(ctx context.Context, userID int64, month, year int) ([]*budget.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND month = $2 AND year = $3
		ORDER BY category`

	return r.list(ctx, query, userID, month, year)
}

func (r *BudgetRepository) ListByUserID(ctx context.Context, userID int64) ([]*budget.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1
		ORDER BY year, month, category`

	return r.list(ctx, query, userID)
}

func (r *BudgetRepository) list(ctx context.Context, query string, args ...any) ([]*budget.Budget, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}
	return budgets, nil
}

func (r *BudgetRepository) Update(ctx context.Context, id string, params budget.UpdateBudgetParams) (*budget.Budget, error) {
	setClauses := []string{"updated_at = now()"}
	args := []any{}
	argPos := 1

	addSet := func(col string, val any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argPos))
		args = append(args, val)
		argPos++
	}

	if params.Category != nil {
		addSet("category", *params.Category)
	}
	if params.Month != nil {
		addSet("month", *params.Month)
	}
	if params.Year != nil {
		addSet("year", *params.Year)
	}
	if params.BudgetAmount != nil {
		addSet("budget_amount", *params.BudgetAmount)
	}
	if params.SpentAmount != nil {
		addSet("spent_amount", *params.SpentAmount)
	}

	query := fmt.Sprintf(
		"UPDATE budgets SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argPos, budgetColumns,
	)
	args = append(args, id)

	b, err := scanBudget(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, budget.ErrBudgetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return b, nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return budget.ErrBudgetNotFound
	}
	return nil
}

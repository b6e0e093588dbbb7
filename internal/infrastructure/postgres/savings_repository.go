package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finwise/internal/domain/ledger"
	"finwise/internal/domain/savings"
)

type SavingsRepository struct {
	db *DB
}

func NewSavingsRepository(db *DB) *SavingsRepository {
	return &SavingsRepository{db: db}
}

const goalColumns = "id, user_id, goal_name, target_amount, current_amount, created_at, updated_at"

func scanGoal(row interface{ Scan(...any) error }) (*savings.Goal, error) {
	var g savings.Goal
	err := row.Scan(
		&g.ID, &g.UserID, &g.GoalName, &g.TargetAmount,
		&g.CurrentAmount, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *SavingsRepository) Create(ctx context.Context, userID int64, params savings.CreateGoalParams) (*savings.Goal, error) {
	query := `
		INSERT INTO savings_goals (id, user_id, goal_name, target_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + goalColumns

	goal, err := scanGoal(r.db.QueryRowContext(
		ctx, query,
		uuid.NewString(), userID, params.GoalName, params.TargetAmount,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}
	return goal, nil
}

func (r *SavingsRepository) GetByID(ctx context.Context, id string) (*savings.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM savings_goals WHERE id = $1`

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get savings goal: %w", err)
	}
	return goal, nil
}

func (r *SavingsRepository) ListByUserID(ctx context.Context, userID int64) ([]*savings.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM savings_goals
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	defer rows.Close()

	var goals []*savings.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan savings goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate savings goals: %w", err)
	}
	return goals, nil
}

func (r *SavingsRepository) AddFunds(ctx context.Context, id string, amount decimal.Decimal) (*savings.Goal, error) {
	query := `
		UPDATE savings_goals
		SET current_amount = current_amount + $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + goalColumns

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, amount, id))
	if err == sql.ErrNoRows {
		return nil, savings.ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add funds: %w", err)
	}
	return goal, nil
}

// Transfer commits the goal increment and the mirrored expense in one
// transaction. The UPDATE is scoped by user_id so a goal deleted or
// re-owned between the service's ownership check and this call cannot be
// credited; in that case the whole transfer rolls back.
func (r *SavingsRepository) Transfer(ctx context.Context, params savings.TransferParams) (*savings.Goal, *ledger.Entry, error) {
	var goal *savings.Goal
	var entry *ledger.Entry

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		goalQuery := `
			UPDATE savings_goals
			SET current_amount = current_amount + $1, updated_at = now()
			WHERE id = $2 AND user_id = $3
			RETURNING ` + goalColumns

		var err error
		goal, err = scanGoal(tx.QueryRowContext(ctx, goalQuery, params.Amount, params.GoalID, params.UserID))
		if err == sql.ErrNoRows {
			return savings.ErrGoalNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to update goal balance: %w", err)
		}

		entryQuery := `
			INSERT INTO ledger_entries (id, user_id, kind, amount, category, description, transaction_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + ledgerColumns

		entry, err = scanEntry(tx.QueryRowContext(
			ctx, entryQuery,
			uuid.NewString(), params.UserID, ledger.KindExpense, params.Amount,
			params.Category, params.Description, params.TransactionDate,
		))
		if err != nil {
			return fmt.Errorf("failed to record mirrored expense: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return goal, entry, nil
}

func (r *SavingsRepository) Update(ctx context.Context, id string, params savings.UpdateGoalParams) (*savings.Goal, error) {
	setClauses := []string{"updated_at = now()"}
	args := []any{}
	argPos := 1

	addSet := func(col string, val any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argPos))
		args = append(args, val)
		argPos++
	}

	if params.GoalName != nil {
		addSet("goal_name", *params.GoalName)
	}
	if params.TargetAmount != nil {
		addSet("target_amount", *params.TargetAmount)
	}

	query := fmt.Sprintf(
		"UPDATE savings_goals SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argPos, goalColumns,
	)
	args = append(args, id)

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, savings.ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}
	return goal, nil
}

func (r *SavingsRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM savings_goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return savings.ErrGoalNotFound
	}
	return nil
}

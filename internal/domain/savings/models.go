package savings

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrGoalNotFound  = errors.New("savings goal not found")
	ErrForbidden     = errors.New("access forbidden")
	ErrInvalidAmount = errors.New("amount must be a positive decimal")
	ErrEmptyGoalName = errors.New("goal name is required")
)

// Goal is a savings goal. CurrentAmount only moves through AddFunds and
// TransferToGoal; UpdatedAt records the last touch and doubles as the
// bucketing key for the savings series in analytics.
type Goal struct {
	ID            string          `json:"id"`
	UserID        int64           `json:"userId"`
	GoalName      string          `json:"goalName"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CreateGoalParams contains parameters for creating a new goal.
type CreateGoalParams struct {
	GoalName     string
	TargetAmount decimal.Decimal
}

// Validate validates the create parameters.
func (p CreateGoalParams) Validate() error {
	if strings.TrimSpace(p.GoalName) == "" {
		return ErrEmptyGoalName
	}
	if p.TargetAmount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// UpdateGoalParams contains parameters for updating a goal.
// Nil fields are left unchanged.
type UpdateGoalParams struct {
	GoalName     *string
	TargetAmount *decimal.Decimal
}

// Validate validates the update parameters.
func (p UpdateGoalParams) Validate() error {
	if p.GoalName != nil && strings.TrimSpace(*p.GoalName) == "" {
		return ErrEmptyGoalName
	}
	if p.TargetAmount != nil && p.TargetAmount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// TransferParams carries one atomic dual-write: the goal balance increment
// and the mirrored expense entry. The repository commits both or neither.
type TransferParams struct {
	GoalID          string
	UserID          int64
	Amount          decimal.Decimal
	Category        string
	Description     string
	TransactionDate string
}

package budget

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrBudgetNotFound = errors.New("budget not found")
	ErrForbidden      = errors.New("access forbidden")
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
	ErrInvalidYear    = errors.New("valid year is required")
	ErrInvalidAmount  = errors.New("amount must be a non-negative decimal")
	ErrEmptyCategory  = errors.New("category is required")
)

// Budget is a monthly spending cap for one category. A budget row is
// identified by its natural key (user, category, month, year); SetBudget
// upserts against that key so the same tuple never yields duplicate rows.
//
// SpentAmount is a stored display field kept for compatibility: it is
// independently settable and is NOT guaranteed to equal the live sum of
// matching expense entries. Consumers that need the live figure go through
// the analytics aggregator, which always recomputes it from the ledger.
type Budget struct {
	ID           string          `json:"id"`
	UserID       int64           `json:"userId"`
	Category     string          `json:"category"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	SpentAmount  decimal.Decimal `json:"spentAmount"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// SetBudgetParams contains parameters for the natural-key upsert.
type SetBudgetParams struct {
	Category string
	Month    int
	Year     int
	Amount   decimal.Decimal
}

// Validate validates the upsert parameters.
func (p SetBudgetParams) Validate() error {
	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidMonth
	}
	if p.Year <= 0 {
		return ErrInvalidYear
	}
	if p.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// UpdateBudgetParams contains parameters for updating a budget by id.
// Nil fields are left unchanged.
type UpdateBudgetParams struct {
	Category     *string
	Month        *int
	Year         *int
	BudgetAmount *decimal.Decimal
	SpentAmount  *decimal.Decimal
}

// Validate validates the update parameters.
func (p UpdateBudgetParams) Validate() error {
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		return ErrEmptyCategory
	}
	if p.Month != nil && (*p.Month < 1 || *p.Month > 12) {
		return ErrInvalidMonth
	}
	if p.Year != nil && *p.Year <= 0 {
		return ErrInvalidYear
	}
	if p.BudgetAmount != nil && p.BudgetAmount.IsNegative() {
		return ErrInvalidAmount
	}
	if p.SpentAmount != nil && p.SpentAmount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

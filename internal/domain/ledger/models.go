package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind distinguishes the two ledger entry variants.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// SavingsCategory is the category under which mirrored savings-transfer
// expenses are recorded. Analytics relies on it to reconcile income,
// expenses and goal balances.
const SavingsCategory = "Savings"

// Domain errors
var (
	ErrEntryNotFound = errors.New("ledger entry not found")
	ErrForbidden     = errors.New("access forbidden")
	ErrInvalidKind   = errors.New("invalid entry kind")
	ErrInvalidAmount = errors.New("amount must be a non-negative decimal")
	ErrEmptyCategory = errors.New("category is required")
)

// Entry is a single income or expense record. Entries are append-only:
// once written they are never touched by the core except through an
// explicit user edit or an account-wide reset.
type Entry struct {
	ID          string          `json:"id"`
	UserID      int64           `json:"userId"`
	Kind        Kind            `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	// TransactionDate is a free-form date string. Different write paths
	// produce different shapes ("2024-03-15", "2024-03-15T10:30:00", ...),
	// so it is stored verbatim and normalized on read. See NormalizeDate.
	TransactionDate string    `json:"transactionDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateEntryParams contains parameters for recording a new entry.
type CreateEntryParams struct {
	Kind            Kind
	Amount          decimal.Decimal
	Category        string
	Description     string
	TransactionDate string
}

// Validate validates the create parameters.
func (p CreateEntryParams) Validate() error {
	if p.Kind != KindIncome && p.Kind != KindExpense {
		return ErrInvalidKind
	}
	if p.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// UpdateEntryParams contains parameters for editing an existing entry.
// Nil fields are left unchanged.
type UpdateEntryParams struct {
	Amount          *decimal.Decimal
	Category        *string
	Description     *string
	TransactionDate *string
}

// Validate validates the update parameters.
func (p UpdateEntryParams) Validate() error {
	if p.Amount != nil && p.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// IsValidKind checks if the provided kind is a known entry variant.
func IsValidKind(k Kind) bool {
	return k == KindIncome || k == KindExpense
}

package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// window is the number of trailing calendar months covered by the
// bucketed charts, current month included.
const window = 6

// MonthLabel formats a date into the fixed bucket label contract:
// three-letter English month abbreviation plus four-digit year.
func MonthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}

// Series is a parallel label/value sequence, bucket order preserved.
type Series struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

// IncomeVsExpenses carries three parallel series over the same buckets.
// The savings series is derived from goal balances, not ledger entries:
// each goal contributes its whole current amount to the month it was last
// touched, and only when that month falls inside the window.
type IncomeVsExpenses struct {
	Labels   []string          `json:"labels"`
	Income   []decimal.Decimal `json:"incomeData"`
	Expenses []decimal.Decimal `json:"expenseData"`
	Savings  []decimal.Decimal `json:"savingsData"`
}

// Summary is the all-time and current-month overview for one user.
type Summary struct {
	TotalIncome          decimal.Decimal `json:"totalIncome"`
	TotalExpenses        decimal.Decimal `json:"totalExpenses"`
	NetSavings           decimal.Decimal `json:"netSavings"`
	TotalSavingsGoals    decimal.Decimal `json:"totalSavingsGoals"`
	TotalSavingsTarget   decimal.Decimal `json:"totalSavingsTarget"`
	SavingsGoalsCount    int             `json:"savingsGoalsCount"`
	CurrentMonthIncome   decimal.Decimal `json:"currentMonthIncome"`
	CurrentMonthExpenses decimal.Decimal `json:"currentMonthExpenses"`
	CurrentMonthSavings  decimal.Decimal `json:"currentMonthSavings"`
	TopSpendingCategory  string          `json:"topSpendingCategory"`
}

// BudgetStatus pairs a stored budget cap with the spend recomputed live
// from the ledger for that (category, month, year).
type BudgetStatus struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	SpentAmount  decimal.Decimal `json:"spentAmount"`
}

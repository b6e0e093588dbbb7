// Package analytics is the read-only composer over the ledger, budgets and
// savings goals. Every operation recomputes from a fresh snapshot per call;
// nothing here caches or mutates. Per-entry date problems never abort an
// aggregation: malformed dates degrade to today via ledger.NormalizeDateAt.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"finwise/internal/domain/budget"
	"finwise/internal/domain/ledger"
	"finwise/internal/domain/savings"
)

// Service composes read-side aggregates. It only ever reads.
type Service struct {
	entries ledger.Repository
	budgets budget.Repository
	goals   savings.Repository
	now     func() time.Time
}

// NewService creates a new analytics service
func NewService(entries ledger.Repository, budgets budget.Repository, goals savings.Repository) *Service {
	return &Service{entries: entries, budgets: budgets, goals: goals, now: time.Now}
}

// buckets returns the trailing window of month starts, oldest first, plus a
// label->index lookup. Months are anchored to day 1 so arithmetic near
// month ends cannot skip a bucket.
func (s *Service) buckets(now time.Time) ([]string, map[string]int) {
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	labels := make([]string, 0, window)
	index := make(map[string]int, window)
	for i := window - 1; i >= 0; i-- {
		label := MonthLabel(base.AddDate(0, -i, 0))
		index[label] = len(labels)
		labels = append(labels, label)
	}
	return labels, index
}

func zeroSeries(n int) []decimal.Decimal {
	data := make([]decimal.Decimal, n)
	for i := range data {
		data[i] = decimal.Zero
	}
	return data
}

// MonthlySpending sums expenses into the trailing six calendar-month
// buckets, oldest to newest. Entries dated outside the window contribute
// nothing; they are dropped, not an error.
func (s *Service) MonthlySpending(ctx context.Context, userID int64) (*Series, error) {
	expenses, err := s.entries.ListByUserIDAndKind(ctx, userID, ledger.KindExpense)
	if err != nil {
		return nil, err
	}

	now := s.now()
	labels, index := s.buckets(now)
	data := zeroSeries(len(labels))

	for _, e := range expenses {
		label := MonthLabel(ledger.NormalizeDateAt(e.TransactionDate, now))
		if i, ok := index[label]; ok {
			data[i] = data[i].Add(e.Amount)
		}
	}

	return &Series{Labels: labels, Data: data}, nil
}

// CategoryBreakdown groups all expenses by their raw category string and
// sums amounts. Categories are not normalized: "Food" and "food" stay
// separate buckets. Labels are returned sorted for stable output, but no
// ordering is part of the contract.
func (s *Service) CategoryBreakdown(ctx context.Context, userID int64) (*Series, error) {
	expenses, err := s.entries.ListByUserIDAndKind(ctx, userID, ledger.KindExpense)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}

	labels := make([]string, 0, len(sums))
	for category := range sums {
		labels = append(labels, category)
	}
	sort.Strings(labels)

	data := make([]decimal.Decimal, 0, len(labels))
	for _, category := range labels {
		data = append(data, sums[category])
	}

	return &Series{Labels: labels, Data: data}, nil
}

// IncomeVsExpenses produces income and expense sums per bucket plus the
// goal-balance savings series described on the IncomeVsExpenses type.
func (s *Service) IncomeVsExpenses(ctx context.Context, userID int64) (*IncomeVsExpenses, error) {
	all, err := s.entries.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	labels, index := s.buckets(now)
	income := zeroSeries(len(labels))
	expenses := zeroSeries(len(labels))
	saved := zeroSeries(len(labels))

	for _, e := range all {
		label := MonthLabel(ledger.NormalizeDateAt(e.TransactionDate, now))
		i, ok := index[label]
		if !ok {
			continue
		}
		switch e.Kind {
		case ledger.KindIncome:
			income[i] = income[i].Add(e.Amount)
		case ledger.KindExpense:
			expenses[i] = expenses[i].Add(e.Amount)
		}
	}

	for _, g := range goals {
		if g.UpdatedAt.IsZero() {
			continue
		}
		if i, ok := index[MonthLabel(g.UpdatedAt)]; ok {
			saved[i] = saved[i].Add(g.CurrentAmount)
		}
	}

	return &IncomeVsExpenses{Labels: labels, Income: income, Expenses: expenses, Savings: saved}, nil
}

// Summary computes the all-time and current-month overview.
func (s *Service) Summary(ctx context.Context, userID int64) (*Summary, error) {
	all, err := s.entries.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := &Summary{
		TotalIncome:          decimal.Zero,
		TotalExpenses:        decimal.Zero,
		TotalSavingsGoals:    decimal.Zero,
		TotalSavingsTarget:   decimal.Zero,
		CurrentMonthIncome:   decimal.Zero,
		CurrentMonthExpenses: decimal.Zero,
		SavingsGoalsCount:    len(goals),
	}

	categorySums := make(map[string]decimal.Decimal)
	for _, e := range all {
		d := ledger.NormalizeDateAt(e.TransactionDate, now)
		currentMonth := d.Year() == now.Year() && d.Month() == now.Month()

		switch e.Kind {
		case ledger.KindIncome:
			out.TotalIncome = out.TotalIncome.Add(e.Amount)
			if currentMonth {
				out.CurrentMonthIncome = out.CurrentMonthIncome.Add(e.Amount)
			}
		case ledger.KindExpense:
			out.TotalExpenses = out.TotalExpenses.Add(e.Amount)
			categorySums[e.Category] = categorySums[e.Category].Add(e.Amount)
			if currentMonth {
				out.CurrentMonthExpenses = out.CurrentMonthExpenses.Add(e.Amount)
			}
		}
	}

	for _, g := range goals {
		out.TotalSavingsGoals = out.TotalSavingsGoals.Add(g.CurrentAmount)
		out.TotalSavingsTarget = out.TotalSavingsTarget.Add(g.TargetAmount)
	}

	out.NetSavings = out.TotalIncome.Sub(out.TotalExpenses)
	out.CurrentMonthSavings = out.CurrentMonthIncome.Sub(out.CurrentMonthExpenses)
	out.TopSpendingCategory = topCategory(categorySums)

	return out, nil
}

// topCategory picks the category with the largest summed spend. Ties break
// to the lexicographically smaller name so results are reproducible.
// Returns "None" when there are no expenses.
func topCategory(sums map[string]decimal.Decimal) string {
	var top string
	var best decimal.Decimal
	found := false
	for category, sum := range sums {
		switch {
		case !found,
			sum.GreaterThan(best),
			sum.Equal(best) && category < top:
			top = category
			best = sum
			found = true
		}
	}
	if !found {
		return "None"
	}
	return top
}

// BudgetSpending returns one month's budgets with the spent figure
// recomputed live from the expense ledger instead of the stored display
// field. An expense counts toward a budget when its raw category matches
// exactly and its normalized date lands in the budget's month.
func (s *Service) BudgetSpending(ctx context.Context, userID int64, month, year int) ([]*BudgetStatus, error) {
	if month < 1 || month > 12 {
		return nil, budget.ErrInvalidMonth
	}
	budgets, err := s.budgets.ListByUserMonthYear(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	expenses, err := s.entries.ListByUserIDAndKind(ctx, userID, ledger.KindExpense)
	if err != nil {
		return nil, err
	}

	now := s.now()
	spent := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		d := ledger.NormalizeDateAt(e.TransactionDate, now)
		if d.Year() == year && int(d.Month()) == month {
			spent[e.Category] = spent[e.Category].Add(e.Amount)
		}
	}

	out := make([]*BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		live, ok := spent[b.Category]
		if !ok {
			live = decimal.Zero
		}
		out = append(out, &BudgetStatus{
			ID:           b.ID,
			Category:     b.Category,
			Month:        b.Month,
			Year:         b.Year,
			BudgetAmount: b.BudgetAmount,
			SpentAmount:  live,
		})
	}
	return out, nil
}

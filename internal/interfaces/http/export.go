package http

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"

	"finwise/internal/domain/budget"
	"finwise/internal/domain/ledger"
	"finwise/internal/domain/savings"
	"finwise/internal/shared/middleware"
)

type ExportHandler struct {
	ledgerService  *ledger.Service
	budgetService  *budget.Service
	savingsService *savings.Service
}

func NewExportHandler(ledgerService *ledger.Service, budgetService *budget.Service, savingsService *savings.Service) *ExportHandler {
	return &ExportHandler{
		ledgerService:  ledgerService,
		budgetService:  budgetService,
		savingsService: savingsService,
	}
}

// HandleExportCSV streams the user's full data as CSV: ledger entries,
// budgets, and savings goals as blank-line separated sections, each with
// its own header row. Rows keep the repositories' listing order.
func (h *ExportHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.ledgerService.ListEntries(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing entries for export, user %d: %v", userID, err)
		http.Error(w, "Failed to export data", http.StatusInternalServerError)
		return
	}
	budgets, err := h.budgetService.ListAll(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing budgets for export, user %d: %v", userID, err)
		http.Error(w, "Failed to export data", http.StatusInternalServerError)
		return
	}
	goals, err := h.savingsService.ListGoals(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing goals for export, user %d: %v", userID, err)
		http.Error(w, "Failed to export data", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="finwise-export.csv"`)

	cw := csv.NewWriter(w)
	defer cw.Flush()

	cw.Write([]string{"entries"})
	cw.Write([]string{"id", "kind", "amount", "category", "description", "transactionDate"})
	for _, e := range entries {
		cw.Write([]string{e.ID, string(e.Kind), e.Amount.String(), e.Category, e.Description, e.TransactionDate})
	}

	cw.Write(nil)
	cw.Write([]string{"budgets"})
	cw.Write([]string{"id", "category", "month", "year", "budgetAmount", "spentAmount"})
	for _, b := range budgets {
		cw.Write([]string{b.ID, b.Category, strconv.Itoa(b.Month), strconv.Itoa(b.Year), b.BudgetAmount.String(), b.SpentAmount.String()})
	}

	cw.Write(nil)
	cw.Write([]string{"goals"})
	cw.Write([]string{"id", "goalName", "targetAmount", "currentAmount"})
	for _, g := range goals {
		cw.Write([]string{g.ID, g.GoalName, g.TargetAmount.String(), g.CurrentAmount.String()})
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("Error writing CSV export for user %d: %v", userID, err)
	}
}

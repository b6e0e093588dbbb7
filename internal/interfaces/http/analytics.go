package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"finwise/internal/domain/analytics"
	"finwise/internal/domain/budget"
	"finwise/internal/shared/middleware"
)

type AnalyticsHandler struct {
	service *analytics.Service
}

func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// HandleMonthlySpending returns expense totals for the trailing six months.
func (h *AnalyticsHandler) HandleMonthlySpending(w http.ResponseWriter, r *http.Request) {
	h.handleSeries(w, r, h.service.MonthlySpending)
}

// HandleCategoryBreakdown returns expense totals grouped by category.
func (h *AnalyticsHandler) HandleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	h.handleSeries(w, r, h.service.CategoryBreakdown)
}

func (h *AnalyticsHandler) handleSeries(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, userID int64) (*analytics.Series, error)) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	series, err := fetch(r.Context(), userID)
	if err != nil {
		log.Printf("Error computing series for user %d: %v", userID, err)
		http.Error(w, "Failed to compute analytics", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, series)
}

// HandleIncomeVsExpenses returns aligned monthly income, expense, and
// savings series.
func (h *AnalyticsHandler) HandleIncomeVsExpenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.service.IncomeVsExpenses(r.Context(), userID)
	if err != nil {
		log.Printf("Error computing income vs expenses for user %d: %v", userID, err)
		http.Error(w, "Failed to compute analytics", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleSummary returns the dashboard summary for the current month.
func (h *AnalyticsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		log.Printf("Error computing summary for user %d: %v", userID, err)
		http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// HandleBudgetSpending returns budgets for a month with spend recomputed
// from the ledger.
func (h *AnalyticsHandler) HandleBudgetSpending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "Invalid month", http.StatusBadRequest)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}

	statuses, err := h.service.BudgetSpending(r.Context(), userID, month, year)
	if err != nil {
		if errors.Is(err, budget.ErrInvalidMonth) || errors.Is(err, budget.ErrInvalidYear) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error computing budget spending for user %d: %v", userID, err)
		http.Error(w, "Failed to compute budget spending", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, statuses)
}

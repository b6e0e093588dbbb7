package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"finwise/internal/domain/budget"
	"finwise/internal/shared/middleware"
)

type BudgetHandler struct {
	service *budget.Service
}

func NewBudgetHandler(service *budget.Service) *BudgetHandler {
	return &BudgetHandler{service: service}
}

type SetBudgetRequest struct {
	Category string          `json:"category"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	Amount   decimal.Decimal `json:"amount"`
}

type UpdateBudgetRequest struct {
	Category     *string          `json:"category,omitempty"`
	Month        *int             `json:"month,omitempty"`
	Year         *int             `json:"year,omitempty"`
	BudgetAmount *decimal.Decimal `json:"budgetAmount,omitempty"`
	SpentAmount  *decimal.Decimal `json:"spentAmount,omitempty"`
}

// HandleBudgets creates or replaces a budget, or lists budgets for a
// month and year given via query parameters.
func (h *BudgetHandler) HandleBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodPost:
		var req SetBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		b, err := h.service.SetBudget(r.Context(), userID, budget.SetBudgetParams{
			Category: req.Category,
			Month:    req.Month,
			Year:     req.Year,
			Amount:   req.Amount,
		})
		if err != nil {
			h.writeBudgetError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, b)

	case http.MethodGet:
		monthStr := r.URL.Query().Get("month")
		yearStr := r.URL.Query().Get("year")

		if monthStr == "" && yearStr == "" {
			budgets, err := h.service.ListAll(r.Context(), userID)
			if err != nil {
				log.Printf("Error listing budgets for user %d: %v", userID, err)
				http.Error(w, "Failed to list budgets", http.StatusInternalServerError)
				return
			}
			respondJSON(w, http.StatusOK, budgets)
			return
		}

		month, err := strconv.Atoi(monthStr)
		if err != nil {
			http.Error(w, "Invalid month", http.StatusBadRequest)
			return
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			http.Error(w, "Invalid year", http.StatusBadRequest)
			return
		}

		budgets, err := h.service.ListMonthly(r.Context(), userID, month, year)
		if err != nil {
			h.writeBudgetError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, budgets)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleBudgetByID updates or deletes a single budget.
func (h *BudgetHandler) HandleBudgetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	budgetID := strings.TrimPrefix(r.URL.Path, "/api/budgets/")
	if budgetID == "" || strings.Contains(budgetID, "/") {
		http.Error(w, "Budget ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req UpdateBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		b, err := h.service.UpdateBudget(r.Context(), budgetID, userID, budget.UpdateBudgetParams{
			Category:     req.Category,
			Month:        req.Month,
			Year:         req.Year,
			BudgetAmount: req.BudgetAmount,
			SpentAmount:  req.SpentAmount,
		})
		if err != nil {
			h.writeBudgetError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, b)

	case http.MethodDelete:
		if err := h.service.DeleteBudget(r.Context(), budgetID, userID); err != nil {
			h.writeBudgetError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *BudgetHandler) writeBudgetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, budget.ErrBudgetNotFound):
		http.Error(w, "Budget not found", http.StatusNotFound)
	case errors.Is(err, budget.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, budget.ErrInvalidMonth),
		errors.Is(err, budget.ErrInvalidYear),
		errors.Is(err, budget.ErrInvalidAmount),
		errors.Is(err, budget.ErrEmptyCategory):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Budget error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

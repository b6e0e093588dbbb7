package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"finwise/internal/domain/savings"
	"finwise/internal/shared/middleware"
)

type SavingsHandler struct {
	service *savings.Service
}

func NewSavingsHandler(service *savings.Service) *SavingsHandler {
	return &SavingsHandler{service: service}
}

type CreateGoalRequest struct {
	GoalName     string          `json:"goalName"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
}

type UpdateGoalRequest struct {
	GoalName     *string          `json:"goalName,omitempty"`
	TargetAmount *decimal.Decimal `json:"targetAmount,omitempty"`
}

type AddFundsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type TransferRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// HandleGoals lists goals or creates a new one.
func (h *SavingsHandler) HandleGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		goals, err := h.service.ListGoals(r.Context(), userID)
		if err != nil {
			log.Printf("Error listing goals for user %d: %v", userID, err)
			http.Error(w, "Failed to list goals", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, goals)

	case http.MethodPost:
		var req CreateGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		goal, err := h.service.CreateGoal(r.Context(), userID, savings.CreateGoalParams{
			GoalName:     req.GoalName,
			TargetAmount: req.TargetAmount,
		})
		if err != nil {
			h.writeGoalError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, goal)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleGoalByID reads, updates, or deletes a single goal. Sub-resources
// addFunds and transfer are dispatched from the path suffix.
func (h *SavingsHandler) HandleGoalByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/goals/")
	goalID, action, _ := strings.Cut(rest, "/")
	if goalID == "" {
		http.Error(w, "Goal ID is required", http.StatusBadRequest)
		return
	}

	switch action {
	case "add-funds":
		h.handleAddFunds(w, r, goalID, userID)
		return
	case "transfer":
		h.handleTransfer(w, r, goalID, userID)
		return
	case "":
	default:
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		goal, err := h.service.GetGoal(r.Context(), goalID, userID)
		if err != nil {
			h.writeGoalError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, goal)

	case http.MethodPut:
		var req UpdateGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		goal, err := h.service.UpdateGoal(r.Context(), goalID, userID, savings.UpdateGoalParams{
			GoalName:     req.GoalName,
			TargetAmount: req.TargetAmount,
		})
		if err != nil {
			h.writeGoalError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, goal)

	case http.MethodDelete:
		if err := h.service.DeleteGoal(r.Context(), goalID, userID); err != nil {
			h.writeGoalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SavingsHandler) handleAddFunds(w http.ResponseWriter, r *http.Request, goalID string, userID int64) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AddFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	goal, err := h.service.AddFunds(r.Context(), goalID, userID, req.Amount)
	if err != nil {
		h.writeGoalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *SavingsHandler) handleTransfer(w http.ResponseWriter, r *http.Request, goalID string, userID int64) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.TransferToGoal(r.Context(), goalID, userID, req.Amount, req.Description)
	if err != nil {
		h.writeGoalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *SavingsHandler) writeGoalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, savings.ErrGoalNotFound):
		http.Error(w, "Goal not found", http.StatusNotFound)
	case errors.Is(err, savings.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, savings.ErrInvalidAmount), errors.Is(err, savings.ErrEmptyGoalName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Savings error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

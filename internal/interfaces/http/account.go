package http

import (
	"log"
	"net/http"

	"finwise/internal/domain/user"
	"finwise/internal/shared/middleware"
)

type AccountHandler struct {
	userRepo user.Repository
}

func NewAccountHandler(userRepo user.Repository) *AccountHandler {
	return &AccountHandler{userRepo: userRepo}
}

// HandleMe returns the authenticated user's profile.
func (h *AccountHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.userRepo.GetByID(r.Context(), userID)
	if err != nil {
		log.Printf("Error fetching user %d: %v", userID, err)
		http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, u)
}

// HandleReset removes every ledger entry, budget, and savings goal for
// the user in one transaction. The account itself survives.
func (h *AccountHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.userRepo.PurgeFinanceData(r.Context(), userID); err != nil {
		log.Printf("Error resetting data for user %d: %v", userID, err)
		http.Error(w, "Failed to reset account data", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteAccount removes the user and all owned finance data.
func (h *AccountHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.userRepo.DeleteAccount(r.Context(), userID); err != nil {
		log.Printf("Error deleting account %d: %v", userID, err)
		http.Error(w, "Failed to delete account", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

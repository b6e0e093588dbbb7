package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"finwise/internal/domain/ledger"
	"finwise/internal/shared/middleware"
)

type LedgerHandler struct {
	service *ledger.Service
}

func NewLedgerHandler(service *ledger.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

type CreateEntryRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transactionDate"`
}

type UpdateEntryRequest struct {
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Description     *string          `json:"description,omitempty"`
	TransactionDate *string          `json:"transactionDate,omitempty"`
}

// HandleIncomes lists or records income entries.
func (h *LedgerHandler) HandleIncomes(w http.ResponseWriter, r *http.Request) {
	h.handleKind(w, r, ledger.KindIncome)
}

// HandleExpenses lists or records expense entries.
func (h *LedgerHandler) HandleExpenses(w http.ResponseWriter, r *http.Request) {
	h.handleKind(w, r, ledger.KindExpense)
}

func (h *LedgerHandler) handleKind(w http.ResponseWriter, r *http.Request, kind ledger.Kind) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		entries, err := h.service.ListByKind(r.Context(), userID, kind)
		if err != nil {
			log.Printf("Error listing %s entries for user %d: %v", kind, userID, err)
			http.Error(w, "Failed to list entries", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, entries)

	case http.MethodPost:
		var req CreateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		var entry *ledger.Entry
		var err error
		if kind == ledger.KindIncome {
			entry, err = h.service.RecordIncome(r.Context(), userID, req.Amount, req.Category, req.Description, req.TransactionDate)
		} else {
			entry, err = h.service.RecordExpense(r.Context(), userID, req.Amount, req.Category, req.Description, req.TransactionDate)
		}
		if err != nil {
			if errors.Is(err, ledger.ErrInvalidAmount) || errors.Is(err, ledger.ErrEmptyCategory) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("Error recording %s entry for user %d: %v", kind, userID, err)
			http.Error(w, "Failed to record entry", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, entry)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleEntries lists every ledger entry for the user, both kinds interleaved.
func (h *LedgerHandler) HandleEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.service.ListEntries(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing entries for user %d: %v", userID, err)
		http.Error(w, "Failed to list entries", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// HandleEntryByID updates or deletes a single entry. The entry ID is the
// final path segment.
func (h *LedgerHandler) HandleEntryByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entryID := strings.TrimPrefix(r.URL.Path, "/api/entries/")
	if entryID == "" || strings.Contains(entryID, "/") {
		http.Error(w, "Entry ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req UpdateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		entry, err := h.service.UpdateEntry(r.Context(), entryID, userID, ledger.UpdateEntryParams{
			Amount:          req.Amount,
			Category:        req.Category,
			Description:     req.Description,
			TransactionDate: req.TransactionDate,
		})
		if err != nil {
			h.writeEntryError(w, entryID, err)
			return
		}
		respondJSON(w, http.StatusOK, entry)

	case http.MethodDelete:
		if err := h.service.DeleteEntry(r.Context(), entryID, userID); err != nil {
			h.writeEntryError(w, entryID, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LedgerHandler) writeEntryError(w http.ResponseWriter, entryID string, err error) {
	switch {
	case errors.Is(err, ledger.ErrEntryNotFound):
		http.Error(w, "Entry not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrEmptyCategory):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Error on entry %s: %v", entryID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

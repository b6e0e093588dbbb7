package main

import (
	"net/http"

	"finwise/internal/shared/config"
	"finwise/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", handleHealth)

	// Public auth routes
	mux.HandleFunc("/api/auth/register", deps.AuthHandler.HandleRegister)
	mux.HandleFunc("/api/auth/login", deps.AuthHandler.HandleLogin)

	// Protected routes
	authMiddleware := middleware.Auth(deps.JWT)

	mux.Handle("/api/users/me", authMiddleware(http.HandlerFunc(deps.AccountHandler.HandleMe)))
	mux.Handle("/api/account/reset", authMiddleware(http.HandlerFunc(deps.AccountHandler.HandleReset)))
	mux.Handle("/api/account", authMiddleware(http.HandlerFunc(deps.AccountHandler.HandleDeleteAccount)))

	mux.Handle("/api/incomes", authMiddleware(http.HandlerFunc(deps.LedgerHandler.HandleIncomes)))
	mux.Handle("/api/expenses", authMiddleware(http.HandlerFunc(deps.LedgerHandler.HandleExpenses)))
	mux.Handle("/api/entries", authMiddleware(http.HandlerFunc(deps.LedgerHandler.HandleEntries)))
	mux.Handle("/api/entries/", authMiddleware(http.HandlerFunc(deps.LedgerHandler.HandleEntryByID)))
	mux.Handle("/api/entries/export", authMiddleware(http.HandlerFunc(deps.ExportHandler.HandleExportCSV)))

	mux.Handle("/api/budgets", authMiddleware(http.HandlerFunc(deps.BudgetHandler.HandleBudgets)))
	mux.Handle("/api/budgets/", authMiddleware(http.HandlerFunc(deps.BudgetHandler.HandleBudgetByID)))

	mux.Handle("/api/goals", authMiddleware(http.HandlerFunc(deps.SavingsHandler.HandleGoals)))
	mux.Handle("/api/goals/", authMiddleware(http.HandlerFunc(deps.SavingsHandler.HandleGoalByID)))

	mux.Handle("/api/analytics/monthly-spending", authMiddleware(http.HandlerFunc(deps.AnalyticsHandler.HandleMonthlySpending)))
	mux.Handle("/api/analytics/category-breakdown", authMiddleware(http.HandlerFunc(deps.AnalyticsHandler.HandleCategoryBreakdown)))
	mux.Handle("/api/analytics/income-vs-expenses", authMiddleware(http.HandlerFunc(deps.AnalyticsHandler.HandleIncomeVsExpenses)))
	mux.Handle("/api/analytics/summary", authMiddleware(http.HandlerFunc(deps.AnalyticsHandler.HandleSummary)))
	mux.Handle("/api/analytics/budget-spending", authMiddleware(http.HandlerFunc(deps.AnalyticsHandler.HandleBudgetSpending)))

	// Apply global middleware
	handler := middleware.Logging(middleware.CORS(mux))

	// Telemetry instrumentation when enabled
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(middleware.Tracing(handler))
	}

	return handler
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

package main

import (
	"log"

	"finwise/internal/domain/analytics"
	"finwise/internal/domain/budget"
	"finwise/internal/domain/ledger"
	"finwise/internal/domain/savings"
	"finwise/internal/infrastructure/postgres"
	httphandlers "finwise/internal/interfaces/http"
	"finwise/internal/shared/auth"
	"finwise/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	AuthHandler      *httphandlers.AuthHandler
	AccountHandler   *httphandlers.AccountHandler
	LedgerHandler    *httphandlers.LedgerHandler
	BudgetHandler    *httphandlers.BudgetHandler
	SavingsHandler   *httphandlers.SavingsHandler
	AnalyticsHandler *httphandlers.AnalyticsHandler
	ExportHandler    *httphandlers.ExportHandler

	// Auth
	JWT *auth.JWT
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	if err := postgres.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	ledgerRepo := postgres.NewLedgerRepository(db)
	budgetRepo := postgres.NewBudgetRepository(db)
	savingsRepo := postgres.NewSavingsRepository(db)

	// Domain services
	ledgerService := ledger.NewService(ledgerRepo)
	budgetService := budget.NewService(budgetRepo)
	savingsService := savings.NewService(savingsRepo)
	analyticsService := analytics.NewService(ledgerRepo, budgetRepo, savingsRepo)

	// Auth
	jwt := auth.NewJWT(cfg.JWT.Secret)

	// Handlers
	authHandler := httphandlers.NewAuthHandler(userRepo, jwt)
	accountHandler := httphandlers.NewAccountHandler(userRepo)
	ledgerHandler := httphandlers.NewLedgerHandler(ledgerService)
	budgetHandler := httphandlers.NewBudgetHandler(budgetService)
	savingsHandler := httphandlers.NewSavingsHandler(savingsService)
	analyticsHandler := httphandlers.NewAnalyticsHandler(analyticsService)
	exportHandler := httphandlers.NewExportHandler(ledgerService, budgetService, savingsService)

	return &Dependencies{
		DB:               db,
		AuthHandler:      authHandler,
		AccountHandler:   accountHandler,
		LedgerHandler:    ledgerHandler,
		BudgetHandler:    budgetHandler,
		SavingsHandler:   savingsHandler,
		AnalyticsHandler: analyticsHandler,
		ExportHandler:    exportHandler,
		JWT:              jwt,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}

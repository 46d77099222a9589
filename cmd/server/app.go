package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/imslabs/ims-api/internal/config"
	"github.com/imslabs/ims-api/internal/maintenance"
	"github.com/imslabs/ims-api/internal/platform/postgres"
	"github.com/imslabs/ims-api/internal/service"
	"github.com/imslabs/ims-api/internal/service/auth"
	"github.com/imslabs/ims-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore     store.UserStore
	medicineStore store.MedicineStore
	categoryStore store.CategoryStore
	doseFormStore store.DoseFormStore
	strengthStore store.StrengthStore
	atcCodeStore  store.ATCCodeStore

	// Services
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	medicineService  service.MedicineService
	catalogService   service.CatalogService

	// Background jobs
	purger *maintenance.Purger
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	bcryptCost := cfg.Auth.BcryptCost
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	app.userStore = postgres.NewPostgresUserStore(db, bcryptCost)
	app.medicineStore = postgres.NewPostgresMedicineStore(db, logger)
	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.doseFormStore = postgres.NewPostgresDoseFormStore(db, logger)
	app.strengthStore = postgres.NewPostgresStrengthStore(db, logger)
	app.atcCodeStore = postgres.NewPostgresATCCodeStore(db, logger)

	app.medicineService, err = service.NewMedicineService(
		db,
		app.medicineStore,
		app.strengthStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create medicine service: %w", err)
	}

	app.catalogService, err = service.NewCatalogService(
		app.categoryStore,
		app.doseFormStore,
		app.atcCodeStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	app.purger = maintenance.NewPurger(
		cfg.Maintenance,
		app.strengthStore,
		app.atcCodeStore,
		logger,
	)
	if err := app.purger.Start(); err != nil {
		return nil, fmt.Errorf("failed to start purge job: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.purger != nil {
		app.purger.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

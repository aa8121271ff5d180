package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/librisdev/libris/internal/config"
	"github.com/librisdev/libris/internal/platform/postgres"
	"github.com/librisdev/libris/internal/service/auth"
	"github.com/librisdev/libris/internal/store"
	"github.com/librisdev/libris/internal/validation"
)

// application holds the shared application dependencies so wiring and
// cleanup live in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	bookStore   store.BookStore
	jwtService  auth.JWTService
	credentials auth.CredentialVerifier
	validator   *validation.Validator
}

// newApplication creates an application instance with all dependencies
// initialized. Config, logger and database connection are established by
// the caller beforehand.
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

	app.credentials, err = auth.NewStaticCredentialVerifier(cfg.Auth.Username, cfg.Auth.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential verifier: %w", err)
	}

	app.bookStore = postgres.NewPostgresBookStore(db)
	app.validator = validation.NewValidator()

	return app, nil
}

// cleanup releases resources on shutdown.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}

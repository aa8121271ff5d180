package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/librisdev/libris/migrations"
	"github.com/pressly/goose/v3"
)

// setupGoose points goose at the embedded migration files.
func setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// migrateUp applies all pending migrations.
func migrateUp(db *sql.DB, log *slog.Logger) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	log.Info("database migrations applied")
	return nil
}

// runMigrationCommand executes a single migration command and returns.
func runMigrationCommand(db *sql.DB, command string, log *slog.Logger) error {
	if err := setupGoose(); err != nil {
		return err
	}

	log.Info("running migration command", "command", command)
	switch command {
	case "up":
		return goose.Up(db, ".")
	case "down":
		return goose.Down(db, ".")
	case "status":
		return goose.Status(db, ".")
	default:
		return fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}
}

package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/librisdev/libris/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique
	// constraint violations.
	uniqueViolationCode = "23505"
)

// mapError maps a database error to the appropriate store sentinel,
// wrapping the original so callers retain context for logging. Callers
// never forward the wrapped driver text to clients.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		// The only unique index on books besides the primary key is the
		// partial index on isbn.
		return fmt.Errorf("%w: %v", store.ErrDuplicateISBN, err)
	}

	return err
}

// checkRowsAffected converts a zero-row UPDATE or DELETE into
// store.ErrNotFound.
func checkRowsAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/librisdev/libris/internal/domain"
	"github.com/librisdev/libris/internal/store"
)

// bookColumns is the select list shared by every query that scans a full
// book row.
const bookColumns = "id, title, author, published, isbn, genre, description, pages, publisher, created_at, updated_at"

// PostgresBookStore implements store.BookStore backed by a PostgreSQL
// database.
type PostgresBookStore struct {
	db *sql.DB
}

// NewPostgresBookStore creates a PostgreSQL implementation of BookStore.
// The database connection is initialized and owned by the caller.
func NewPostgresBookStore(db *sql.DB) *PostgresBookStore {
	return &PostgresBookStore{db: db}
}

var _ store.BookStore = (*PostgresBookStore)(nil)

// filterClause renders the WHERE clause for the given filter and returns
// it with its positional arguments. Count and List both go through here
// so their predicates cannot drift apart.
func filterClause(filter store.BookFilter) (string, []any) {
	var conditions []string
	var args []any

	next := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Year != nil {
		conditions = append(conditions, "published = "+next(*filter.Year))
	}
	if filter.Genre != "" {
		conditions = append(conditions, "genre ILIKE "+next("%"+filter.Genre+"%"))
	}
	if filter.Author != "" {
		conditions = append(conditions, "author ILIKE "+next("%"+filter.Author+"%"))
	}
	if filter.ISBN != "" {
		conditions = append(conditions, "isbn = "+next(filter.ISBN))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// scanBook scans one book row from a row scanner. Optional columns scan
// through pointer destinations so NULL becomes nil.
func scanBook(row interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	var b domain.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Published,
		&b.ISBN,
		&b.Genre,
		&b.Description,
		&b.Pages,
		&b.Publisher,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create implements store.BookStore.Create.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	query := `
		INSERT INTO books (title, author, published, isbn, genre, description, pages, publisher)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + bookColumns

	created, err := scanBook(s.db.QueryRowContext(ctx, query,
		book.Title,
		book.Author,
		book.Published,
		book.ISBN,
		book.Genre,
		book.Description,
		book.Pages,
		book.Publisher,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

// GetByID implements store.BookStore.GetByID.
func (s *PostgresBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	query := "SELECT " + bookColumns + " FROM books WHERE id = $1"

	book, err := scanBook(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return book, nil
}

// List implements store.BookStore.List. Results are ordered by ID
// ascending so pagination is deterministic.
func (s *PostgresBookStore) List(ctx context.Context, filter store.BookFilter, page store.Page) ([]*domain.Book, error) {
	where, args := filterClause(filter)
	query := fmt.Sprintf(
		"SELECT %s FROM books%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		bookColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, page.Limit, page.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	books := []*domain.Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, mapError(err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return books, nil
}

// Count implements store.BookStore.Count.
func (s *PostgresBookStore) Count(ctx context.Context, filter store.BookFilter) (int, error) {
	where, args := filterClause(filter)
	query := "SELECT count(*) FROM books" + where

	var total int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, mapError(err)
	}
	return total, nil
}

// Update implements store.BookStore.Update. All mutable fields are
// replaced with the values on book; the caller is responsible for having
// merged unchanged fields beforehand.
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	query := `
		UPDATE books
		SET title = $1, author = $2, published = $3, isbn = $4, genre = $5,
		    description = $6, pages = $7, publisher = $8, updated_at = now()
		WHERE id = $9
		RETURNING ` + bookColumns

	updated, err := scanBook(s.db.QueryRowContext(ctx, query,
		book.Title,
		book.Author,
		book.Published,
		book.ISBN,
		book.Genre,
		book.Description,
		book.Pages,
		book.Publisher,
		book.ID,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

// Delete implements store.BookStore.Delete.
func (s *PostgresBookStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	return checkRowsAffected(result)
}

// ExistsByISBN implements store.BookStore.ExistsByISBN.
func (s *PostgresBookStore) ExistsByISBN(ctx context.Context, isbn string, excludeID int64) (bool, error) {
	query := "SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1 AND id <> $2)"

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, isbn, excludeID).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

// Ping implements store.BookStore.Ping.
func (s *PostgresBookStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

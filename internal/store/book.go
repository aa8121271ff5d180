package store

import (
	"context"

	"github.com/librisdev/libris/internal/domain"
)

// BookFilter holds the optional predicates of a list operation. Zero
// values mean "not supplied". The same filter feeds both the count query
// and the page query so the two can never disagree.
type BookFilter struct {
	Year   *int   // exact publication year
	Genre  string // case-insensitive substring
	Author string // case-insensitive substring
	ISBN   string // exact match
}

// Page describes the bounded slice of a list operation.
type Page struct {
	Limit  int
	Offset int
}

// BookStore defines the interface for book persistence. Implementations
// must use parameterized queries; the security screen upstream is a
// coarse filter, not a substitute.
type BookStore interface {
	// Create inserts a new book and returns it with the store-assigned ID
	// and timestamps populated. Returns ErrDuplicateISBN if the ISBN is
	// already taken.
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)

	// GetByID retrieves a book by ID. Returns ErrNotFound if it does not
	// exist.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// List returns the books matching filter, ordered by ID ascending,
	// bounded by page.
	List(ctx context.Context, filter BookFilter, page Page) ([]*domain.Book, error)

	// Count returns the total number of books matching filter.
	Count(ctx context.Context, filter BookFilter) (int, error)

	// Update replaces the mutable fields of the book identified by
	// book.ID. Returns ErrNotFound if it does not exist and
	// ErrDuplicateISBN if the new ISBN collides with another record.
	Update(ctx context.Context, book *domain.Book) (*domain.Book, error)

	// Delete removes a book. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// ExistsByISBN reports whether a book other than excludeID already
	// carries the given ISBN. Pass excludeID 0 for inserts.
	ExistsByISBN(ctx context.Context, isbn string, excludeID int64) (bool, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}

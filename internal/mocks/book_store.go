package mocks

import (
	"context"
	"strings"
	"time"

	"github.com/librisdev/libris/internal/domain"
	"github.com/librisdev/libris/internal/store"
)

// MockBookStore implements store.BookStore for testing. Function fields
// override individual methods; otherwise an in-memory map backs a usable
// default implementation.
type MockBookStore struct {
	CreateFn       func(ctx context.Context, book *domain.Book) (*domain.Book, error)
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Book, error)
	ListFn         func(ctx context.Context, filter store.BookFilter, page store.Page) ([]*domain.Book, error)
	CountFn        func(ctx context.Context, filter store.BookFilter) (int, error)
	UpdateFn       func(ctx context.Context, book *domain.Book) (*domain.Book, error)
	DeleteFn       func(ctx context.Context, id int64) error
	ExistsByISBNFn func(ctx context.Context, isbn string, excludeID int64) (bool, error)
	PingFn         func(ctx context.Context) error

	// Data for the default implementation.
	Books  map[int64]*domain.Book
	NextID int64
}

var _ store.BookStore = (*MockBookStore)(nil)

// NewMockBookStore creates a mock store with initialized defaults.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{
		Books:  make(map[int64]*domain.Book),
		NextID: 1,
	}
}

// Create implements the BookStore interface.
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}

	created := *book
	created.ID = m.NextID
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	m.NextID++
	m.Books[created.ID] = &created
	return &created, nil
}

// GetByID implements the BookStore interface.
func (m *MockBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	book, ok := m.Books[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return book, nil
}

// List implements the BookStore interface.
func (m *MockBookStore) List(ctx context.Context, filter store.BookFilter, page store.Page) ([]*domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page)
	}

	matched := m.matching(filter)
	if page.Offset >= len(matched) {
		return []*domain.Book{}, nil
	}
	end := page.Offset + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[page.Offset:end], nil
}

// Count implements the BookStore interface.
func (m *MockBookStore) Count(ctx context.Context, filter store.BookFilter) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, filter)
	}
	return len(m.matching(filter)), nil
}

// Update implements the BookStore interface.
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, book)
	}

	existing, ok := m.Books[book.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	updated := *book
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	m.Books[book.ID] = &updated
	return &updated, nil
}

// Delete implements the BookStore interface.
func (m *MockBookStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Books[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.Books, id)
	return nil
}

// ExistsByISBN implements the BookStore interface.
func (m *MockBookStore) ExistsByISBN(ctx context.Context, isbn string, excludeID int64) (bool, error) {
	if m.ExistsByISBNFn != nil {
		return m.ExistsByISBNFn(ctx, isbn, excludeID)
	}

	for id, book := range m.Books {
		if id == excludeID {
			continue
		}
		if book.ISBN != nil && *book.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

// Ping implements the BookStore interface.
func (m *MockBookStore) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}

// matching returns the books matching filter, ordered by ID ascending.
func (m *MockBookStore) matching(filter store.BookFilter) []*domain.Book {
	var matched []*domain.Book
	for id := int64(1); id < m.NextID; id++ {
		book, ok := m.Books[id]
		if !ok {
			continue
		}
		if filter.Year != nil && book.Published != *filter.Year {
			continue
		}
		if filter.Genre != "" {
			if book.Genre == nil || !strings.Contains(strings.ToLower(*book.Genre), strings.ToLower(filter.Genre)) {
				continue
			}
		}
		if filter.Author != "" && !strings.Contains(strings.ToLower(book.Author), strings.ToLower(filter.Author)) {
			continue
		}
		if filter.ISBN != "" {
			if book.ISBN == nil || *book.ISBN != filter.ISBN {
				continue
			}
		}
		matched = append(matched, book)
	}
	return matched
}

package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/librisdev/libris/internal/api/shared"
	"github.com/librisdev/libris/internal/store"
	"github.com/librisdev/libris/internal/validation"
)

// BookHandler handles the book CRUD endpoints.
type BookHandler struct {
	books     store.BookStore
	validator *validation.Validator
	logger    *slog.Logger
	timeNow   func() time.Time
}

// NewBookHandler creates a new BookHandler with the given dependencies.
func NewBookHandler(books store.BookStore, v *validation.Validator, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		books:     books,
		validator: v,
		logger:    logger,
		timeNow:   time.Now,
	}
}

// ListBooks handles GET /books. The parsed query feeds both the count
// and the page fetch so metadata and data always agree.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query(), h.timeNow)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	total, err := h.books.Count(r.Context(), query.Filter)
	if err != nil {
		h.logger.Error("failed to count books", "error", err)
		HandleError(w, r, err)
		return
	}

	books, err := h.books.List(r.Context(), query.Filter, store.Page{
		Limit:  query.Limit,
		Offset: query.Offset(),
	})
	if err != nil {
		h.logger.Error("failed to list books", "error", err)
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListBooksResponse{
		Data:       books,
		Filters:    query.AppliedFilters(),
		Pagination: NewPagination(total, query.Page, query.Limit),
	})
}

// GetBook handles GET /books/{id}.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := readBookID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	book, err := h.books.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// CreateBook handles POST /books. The security screen runs before field
// validation; neither failure reaches the store.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBookPayload(w, r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "invalid_input",
			Message: "Request body must be a JSON object",
		})
		return
	}

	if err := validation.Screen(payload); err != nil {
		HandleError(w, r, err)
		return
	}
	if err := h.validator.Validate(payload); err != nil {
		HandleError(w, r, err)
		return
	}

	book := bookFromPayload(payload)

	if book.ISBN != nil {
		taken, err := h.books.ExistsByISBN(r.Context(), *book.ISBN, 0)
		if err != nil {
			h.logger.Error("failed to check ISBN uniqueness", "error", err)
			HandleError(w, r, err)
			return
		}
		if taken {
			HandleError(w, r, store.ErrDuplicateISBN)
			return
		}
	}

	created, err := h.books.Create(r.Context(), book)
	if err != nil {
		h.logger.Error("failed to create book", "error", err)
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// UpdateBook handles PUT /books/{id}. The submitted fields are overlaid
// on the existing record and the merged payload goes through the same
// screen-then-validate pipeline as a create.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := readBookID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	payload, err := decodeBookPayload(w, r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "invalid_input",
			Message: "Request body must be a JSON object",
		})
		return
	}

	if err := validation.Screen(payload); err != nil {
		HandleError(w, r, err)
		return
	}

	existing, err := h.books.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	merged := mergePayload(payloadFromBook(existing), payload)
	if err := h.validator.Validate(merged); err != nil {
		HandleError(w, r, err)
		return
	}

	book := bookFromPayload(merged)
	book.ID = id

	if book.ISBN != nil {
		taken, err := h.books.ExistsByISBN(r.Context(), *book.ISBN, id)
		if err != nil {
			h.logger.Error("failed to check ISBN uniqueness", "error", err)
			HandleError(w, r, err)
			return
		}
		if taken {
			HandleError(w, r, store.ErrDuplicateISBN)
			return
		}
	}

	updated, err := h.books.Update(r.Context(), book)
	if err != nil {
		h.logger.Error("failed to update book", "error", err, "book_id", id)
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// DeleteBook handles DELETE /books/{id}. Responds 204 with no body; a
// repeated delete of the same ID is a 404.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := readBookID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if err := h.books.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

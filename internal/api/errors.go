package api

import (
	"errors"
	"net/http"

	"github.com/librisdev/libris/internal/api/shared"
	"github.com/librisdev/libris/internal/domain"
	"github.com/librisdev/libris/internal/store"
	"github.com/librisdev/libris/internal/validation"
)

// PaginationError reports an out-of-range page or limit parameter.
type PaginationError struct {
	Field   string
	Message string
}

func (e *PaginationError) Error() string {
	return "invalid pagination parameter " + e.Field + ": " + e.Message
}

// FilterError reports an unparseable or out-of-range filter parameter.
type FilterError struct {
	Field   string
	Message string
}

func (e *FilterError) Error() string {
	return "invalid filter parameter " + e.Field + ": " + e.Message
}

// HandleError maps an error from the validation pipeline or the store to
// its HTTP status and stable error code, and writes the envelope. Store
// failures become a generic internal_error: driver error text never
// reaches the client.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		missingErr    *validation.MissingFieldsError
		typeErr       *validation.TypeError
		lengthErr     *validation.LengthError
		formatErr     *validation.FormatError
		rangeErr      *validation.RangeError
		unsafeErr     *validation.UnsafeInputError
		paginationErr *PaginationError
		filterErr     *FilterError
	)

	switch {
	case errors.As(err, &missingErr):
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "missing_fields",
			Message: missingErr.Error(),
			Fields:  missingErr.Fields,
		})
	case errors.As(err, &typeErr):
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "invalid_type",
			Message: typeErr.Error(),
			Field:   typeErr.Field,
		})
	case errors.As(err, &lengthErr):
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "field_too_long",
			Message: lengthErr.Error(),
			Field:   lengthErr.Field,
		})
	case errors.As(err, &formatErr):
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "invalid_format",
			Message: formatErr.Error(),
			Field:   formatErr.Field,
		})
	case errors.As(err, &rangeErr):
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "invalid_range",
			Message: rangeErr.Error(),
			Field:   rangeErr.Field,
		})
	case errors.As(err, &unsafeErr):
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "invalid_input",
			Message: unsafeErr.Error(),
			Field:   unsafeErr.Field,
		})
	case errors.As(err, &paginationErr):
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "invalid_pagination",
			Message: paginationErr.Error(),
			Field:   paginationErr.Field,
		})
	case errors.As(err, &filterErr):
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "invalid_filter",
			Message: filterErr.Error(),
			Field:   filterErr.Field,
		})
	case errors.Is(err, domain.ErrInvalidID):
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "invalid_id",
			Message: "ID must be a positive integer",
			Field:   "id",
		})
	case errors.Is(err, domain.ErrIDTooLarge):
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "id_too_large",
			Message: "ID exceeds the maximum supported value",
			Field:   "id",
		})
	case errors.Is(err, store.ErrNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, shared.ErrorResponse{
			Error:   "not_found",
			Message: "Book not found",
		})
	case errors.Is(err, store.ErrDuplicateISBN):
		shared.RespondWithError(w, r, http.StatusConflict, shared.ErrorResponse{
			Error:   "duplicate_isbn",
			Message: "A book with this ISBN already exists",
			Field:   "isbn",
		})
	default:
		shared.RespondWithError(w, r, http.StatusInternalServerError, shared.ErrorResponse{
			Error:   "internal_error",
			Message: "An unexpected error occurred",
		})
	}
}

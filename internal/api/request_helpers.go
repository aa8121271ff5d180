package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/librisdev/libris/internal/api/shared"
	"github.com/librisdev/libris/internal/domain"
)

// readBookID extracts and validates the {id} path parameter. Only a
// string of decimal digits representing a strictly positive int64 is
// accepted; this runs before any store lookup so malformed IDs never
// turn into SQL errors.
func readBookID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, fmt.Errorf("%w: empty id", domain.ErrInvalidID)
	}
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: non-digit characters in %q", domain.ErrInvalidID, raw)
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", domain.ErrIDTooLarge, raw)
		}
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	if id < 1 {
		return 0, fmt.Errorf("%w: id must be positive", domain.ErrInvalidID)
	}
	return id, nil
}

// decodeBookPayload decodes the request body into a field map. Book
// payloads are validated as maps rather than structs so the validator
// can report actual JSON kinds and aggregate missing fields.
func decodeBookPayload(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	var payload map[string]any
	if err := shared.DecodeJSON(w, r, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

package api

import (
	"time"

	"github.com/librisdev/libris/internal/domain"
)

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ListBooksResponse is the envelope for the list endpoint: the page of
// records, the filters that were actually applied, and the pagination
// metadata.
type ListBooksResponse struct {
	Data       []*domain.Book `json:"data"`
	Filters    map[string]any `json:"filters"`
	Pagination Pagination     `json:"pagination"`
}

// bookFields is the set of payload keys that map onto Book columns.
// Unknown keys in a payload are ignored.
var bookFields = []string{"title", "author", "published", "isbn", "genre", "description", "pages", "publisher"}

// bookFromPayload converts a screened and validated payload into a Book.
// It must only be called after validation.Validate has accepted the
// payload; the type assertions here rely on that.
func bookFromPayload(payload map[string]any) *domain.Book {
	book := &domain.Book{
		Title:     payload["title"].(string),
		Author:    payload["author"].(string),
		Published: mustInt(payload["published"]),
	}
	if s, ok := payload["isbn"].(string); ok {
		book.ISBN = &s
	}
	if s, ok := payload["genre"].(string); ok {
		book.Genre = &s
	}
	if s, ok := payload["description"].(string); ok {
		book.Description = &s
	}
	if payload["pages"] != nil {
		if _, ok := payload["pages"].(string); !ok {
			pages := mustInt(payload["pages"])
			book.Pages = &pages
		}
	}
	if s, ok := payload["publisher"].(string); ok {
		book.Publisher = &s
	}
	return book
}

// payloadFromBook converts a stored Book back into payload form, used to
// merge an existing record with a partial update before re-validating.
// Absent optional fields stay absent so the merged payload mirrors what
// a full create would have looked like.
func payloadFromBook(book *domain.Book) map[string]any {
	payload := map[string]any{
		"title":     book.Title,
		"author":    book.Author,
		"published": book.Published,
	}
	if book.ISBN != nil {
		payload["isbn"] = *book.ISBN
	}
	if book.Genre != nil {
		payload["genre"] = *book.Genre
	}
	if book.Description != nil {
		payload["description"] = *book.Description
	}
	if book.Pages != nil {
		payload["pages"] = *book.Pages
	}
	if book.Publisher != nil {
		payload["publisher"] = *book.Publisher
	}
	return payload
}

// mergePayload overlays the submitted fields onto the existing record's
// payload. Only fields explicitly present in the request body overwrite;
// an explicit null clears an optional field.
func mergePayload(existing, submitted map[string]any) map[string]any {
	merged := make(map[string]any, len(existing)+len(submitted))
	for k, v := range existing {
		merged[k] = v
	}
	for _, field := range bookFields {
		if v, present := submitted[field]; present {
			if v == nil {
				delete(merged, field)
			} else {
				merged[field] = v
			}
		}
	}
	return merged
}

// mustInt narrows a validated JSON number to int.
func mustInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	panic("mustInt called on unvalidated value")
}

// rfc3339Now formats the current time for the health endpoint.
func rfc3339Now(now func() time.Time) string {
	return now().UTC().Format(time.RFC3339)
}

package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/librisdev/libris/internal/api/shared"
	"github.com/librisdev/libris/internal/store"
)

// HealthHandler reports liveness and store reachability.
type HealthHandler struct {
	books   store.BookStore
	logger  *slog.Logger
	timeNow func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(books store.BookStore, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		books:   books,
		logger:  logger,
		timeNow: time.Now,
	}
}

// Health handles GET /health. A failed store ping is a 500; the response
// never carries driver error text.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.books.Ping(r.Context()); err != nil {
		h.logger.Error("health check failed: store unreachable", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, shared.ErrorResponse{
			Error:   "internal_error",
			Message: "Store unreachable",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: rfc3339Now(h.timeNow),
	})
}

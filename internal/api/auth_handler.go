package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/librisdev/libris/internal/api/shared"
	"github.com/librisdev/libris/internal/service/auth"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	credentials auth.CredentialVerifier
	jwtService  auth.JWTService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(credentials auth.CredentialVerifier, jwtService auth.JWTService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login handles POST /login. Blank fields are reported together; a
// wrong username or password gets the same invalid_credentials answer.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "invalid_input",
			Message: "Request body must be a JSON object",
		})
		return
	}

	var missing []string
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ErrorResponse{
			Error:   "missing_fields",
			Message: "Username and password are required",
			Fields:  missing,
		})
		return
	}

	if err := h.credentials.Verify(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid credentials",
			})
			return
		}
		h.logger.Error("failed to verify credentials", "error", err)
		HandleError(w, r, err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.Username)
	if err != nil {
		h.logger.Error("failed to generate token", "error", err, "username", req.Username)
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/librisdev/libris/internal/api/shared"
	"github.com/librisdev/libris/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate validates the bearer token from the Authorization header
// and adds the verified username to the request context. Each token
// failure kind maps to its own error code so clients can distinguish an
// expired token from a malformed one.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.ErrorResponse{
				Error:   "unauthenticated",
				Message: "A bearer token is required",
			})
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, shared.ErrorResponse{
					Error:   "token_expired",
					Message: "Token expired",
				})
			case auth.ErrTokenNotYetValid:
				shared.RespondWithError(w, r, http.StatusUnauthorized, shared.ErrorResponse{
					Error:   "token_not_yet_valid",
					Message: "Token not yet valid",
				})
			case auth.ErrInvalidToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, shared.ErrorResponse{
					Error:   "token_invalid",
					Message: "Invalid token",
				})
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, shared.ErrorResponse{
					Error:   "internal_error",
					Message: "Authentication error",
				})
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UsernameContextKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an Authorization header value: the
// substring after a single space following the Bearer scheme marker.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", auth.ErrMissingToken
	}
	return parts[1], nil
}

// GetUsername extracts the authenticated username from the request
// context. Returns the username and whether it was present.
func GetUsername(r *http.Request) (string, bool) {
	username, ok := r.Context().Value(shared.UsernameContextKey).(string)
	return username, ok
}

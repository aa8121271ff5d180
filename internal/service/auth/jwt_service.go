package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying the bearer
// tokens that gate the book endpoints.
type JWTService interface {
	// GenerateToken creates a signed JWT for the given username.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken verifies the provided token string and extracts its
	// claims. Returns ErrExpiredToken, ErrTokenNotYetValid or
	// ErrInvalidToken depending on how verification failed.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified identity carried by a token.
type Claims struct {
	// Username is the subject the token was issued for.
	Username string `json:"sub,omitempty"`

	// Standard registered JWT claims.
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

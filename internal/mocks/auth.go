package mocks

import (
	"context"

	"github.com/librisdev/libris/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, username string) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	Token       string
	Claims      *auth.Claims
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.
func (m *MockJWTService) GenerateToken(ctx context.Context, username string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, username)
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "mock-token", nil
}

// ValidateToken implements auth.JWTService.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// MockCredentialVerifier implements auth.CredentialVerifier for testing.
type MockCredentialVerifier struct {
	VerifyFn func(ctx context.Context, username, password string) error

	Username string
	Password string
}

var _ auth.CredentialVerifier = (*MockCredentialVerifier)(nil)

// Verify implements auth.CredentialVerifier.
func (m *MockCredentialVerifier) Verify(ctx context.Context, username, password string) error {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, username, password)
	}
	if username != m.Username || password != m.Password {
		return auth.ErrInvalidCredentials
	}
	return nil
}

package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier defines the interface for checking a login
// credential. Handlers depend on this interface so the single configured
// credential can later be swapped for a real user store.
type CredentialVerifier interface {
	// Verify checks the username/password pair. Returns nil on success
	// or ErrInvalidCredentials on mismatch.
	Verify(ctx context.Context, username, password string) error
}

// StaticCredentialVerifier verifies against one configured credential.
// The plaintext password from configuration is hashed at construction so
// the comparison path is identical to what a user store would do.
type StaticCredentialVerifier struct {
	username     string
	passwordHash []byte
}

var _ CredentialVerifier = (*StaticCredentialVerifier)(nil)

// NewStaticCredentialVerifier creates a verifier for the given credential.
func NewStaticCredentialVerifier(username, password string) (*StaticCredentialVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash configured password: %w", err)
	}
	return &StaticCredentialVerifier{
		username:     username,
		passwordHash: hash,
	}, nil
}

// Verify implements CredentialVerifier. The password is compared even
// when the username does not match, so both failure modes take roughly
// the same time.
func (v *StaticCredentialVerifier) Verify(ctx context.Context, username, password string) error {
	err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))
	if username != v.username || err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

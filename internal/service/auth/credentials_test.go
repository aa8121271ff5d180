package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticCredentialVerifier(t *testing.T) {
	t.Parallel()

	verifier, err := NewStaticCredentialVerifier("admin", "swordfish")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid pair", username: "admin", password: "swordfish"},
		{name: "wrong password", username: "admin", password: "guess", wantErr: ErrInvalidCredentials},
		{name: "wrong username", username: "root", password: "swordfish", wantErr: ErrInvalidCredentials},
		{name: "both wrong", username: "root", password: "guess", wantErr: ErrInvalidCredentials},
		{name: "empty password", username: "admin", password: "", wantErr: ErrInvalidCredentials},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := verifier.Verify(context.Background(), tc.username, tc.password)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

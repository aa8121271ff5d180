package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/librisdev/libris/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	newHandler := func() *AuthHandler {
		credentials := &mocks.MockCredentialVerifier{Username: "admin", Password: "swordfish"}
		jwtService := &mocks.MockJWTService{Token: "issued-token"}
		return NewAuthHandler(credentials, jwtService, testLogger())
	}

	tests := []struct {
		name       string
		payload    map[string]any
		wantStatus int
		wantError  string
		wantFields []string
		wantToken  string
	}{
		{
			name:       "valid credentials",
			payload:    map[string]any{"username": "admin", "password": "swordfish"},
			wantStatus: http.StatusOK,
			wantToken:  "issued-token",
		},
		{
			name:       "wrong password",
			payload:    map[string]any{"username": "admin", "password": "guess"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid_credentials",
		},
		{
			name:       "unknown username",
			payload:    map[string]any{"username": "root", "password": "swordfish"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid_credentials",
		},
		{
			name:       "missing username",
			payload:    map[string]any{"password": "swordfish"},
			wantStatus: http.StatusBadRequest,
			wantError:  "missing_fields",
			wantFields: []string{"username"},
		},
		{
			name:       "missing both fields",
			payload:    map[string]any{},
			wantStatus: http.StatusBadRequest,
			wantError:  "missing_fields",
			wantFields: []string{"username", "password"},
		},
		{
			name:       "blank password",
			payload:    map[string]any{"username": "admin", "password": ""},
			wantStatus: http.StatusBadRequest,
			wantError:  "missing_fields",
			wantFields: []string{"password"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			body, err := json.Marshal(tc.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			newHandler().Login(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantToken != "" {
				var resp LoginResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantToken, resp.Token)
				return
			}

			resp := decodeError(t, rec)
			assert.Equal(t, tc.wantError, resp.Error)
			assert.Equal(t, tc.wantFields, resp.Fields)
		})
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(
		&mocks.MockCredentialVerifier{Username: "admin", Password: "swordfish"},
		&mocks.MockJWTService{Token: "issued-token"},
		testLogger(),
	)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", decodeError(t, rec).Error)
}

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/librisdev/libris/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithID builds a request carrying id as the {id} route parameter.
func requestWithID(t *testing.T, id string) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/books/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestReadBookID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantID  int64
		wantErr error
	}{
		{name: "simple id", raw: "42", wantID: 42},
		{name: "max int64", raw: "9223372036854775807", wantID: 9223372036854775807},
		{name: "letters", raw: "abc", wantErr: domain.ErrInvalidID},
		{name: "negative", raw: "-1", wantErr: domain.ErrInvalidID},
		{name: "zero", raw: "0", wantErr: domain.ErrInvalidID},
		{name: "decimal", raw: "1.5", wantErr: domain.ErrInvalidID},
		{name: "trailing garbage", raw: "42abc", wantErr: domain.ErrInvalidID},
		{name: "leading plus", raw: "+42", wantErr: domain.ErrInvalidID},
		{name: "empty", raw: "", wantErr: domain.ErrInvalidID},
		{name: "int64 overflow", raw: "9223372036854775808", wantErr: domain.ErrIDTooLarge},
		{name: "far beyond int64", raw: "99999999999999999999999999", wantErr: domain.ErrIDTooLarge},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, err := readBookID(requestWithID(t, tc.raw))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

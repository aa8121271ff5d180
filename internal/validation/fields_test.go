package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow pins the clock so the published-year upper bound is stable.
var fixedNow = func() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func validPayload() map[string]any {
	return map[string]any{
		"title":     "The Go Programming Language",
		"author":    "Alan Donovan",
		"published": float64(2015),
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	v := NewValidatorAt(fixedNow)

	payload := validPayload()
	payload["isbn"] = "978-0-13-419044-0"
	payload["genre"] = "Programming"
	payload["description"] = "A comprehensive guide."
	payload["pages"] = float64(380)
	payload["publisher"] = "Addison-Wesley"

	require.NoError(t, v.Validate(payload))
}

func TestValidate_MissingFields(t *testing.T) {
	t.Parallel()

	v := NewValidatorAt(fixedNow)

	tests := []struct {
		name        string
		payload     map[string]any
		wantMissing []string
	}{
		{
			name:        "empty payload lists all required fields",
			payload:     map[string]any{},
			wantMissing: []string{"title", "author", "published"},
		},
		{
			name: "single missing field",
			payload: map[string]any{
				"title":     "Dune",
				"published": float64(1965),
			},
			wantMissing: []string{"author"},
		},
		{
			name: "empty string counts as missing",
			payload: map[string]any{
				"title":     "",
				"author":    "Frank Herbert",
				"published": float64(1965),
			},
			wantMissing: []string{"title"},
		},
		{
			name: "explicit null counts as missing",
			payload: map[string]any{
				"title":     "Dune",
				"author":    nil,
				"published": float64(1965),
			},
			wantMissing: []string{"author"},
		},
		{
			name: "multiple missing fields aggregated in declaration order",
			payload: map[string]any{
				"author": "Frank Herbert",
			},
			wantMissing: []string{"title", "published"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(tc.payload)
			var missingErr *MissingFieldsError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tc.wantMissing, missingErr.Fields)
		})
	}
}

func TestValidate_TypeErrors(t *testing.T) {
	t.Parallel()

	v := NewValidatorAt(fixedNow)

	tests := []struct {
		name       string
		mutate     func(map[string]any)
		wantField  string
		wantActual string
	}{
		{
			name:       "title as number",
			mutate:     func(p map[string]any) { p["title"] = float64(42) },
			wantField:  "title",
			wantActual: "number",
		},
		{
			name:       "author as boolean",
			mutate:     func(p map[string]any) { p["author"] = true },
			wantField:  "author",
			wantActual: "boolean",
		},
		{
			name:       "published as string",
			mutate:     func(p map[string]any) { p["published"] = "2015" },
			wantField:  "published",
			wantActual: "string",
		},
		{
			name:       "published as fractional number",
			mutate:     func(p map[string]any) { p["published"] = 2015.5 },
			wantField:  "published",
			wantActual: "number",
		},
		{
			name:       "genre as array",
			mutate:     func(p map[string]any) { p["genre"] = []any{"scifi"} },
			wantField:  "genre",
			wantActual: "array",
		},
		{
			name:       "publisher as object",
			mutate:     func(p map[string]any) { p["publisher"] = map[string]any{"name": "Ace"} },
			wantField:  "publisher",
			wantActual: "object",
		},
		{
			name:       "pages negative",
			mutate:     func(p map[string]any) { p["pages"] = float64(-3) },
			wantField:  "pages",
			wantActual: "number",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			payload := validPayload()
			tc.mutate(payload)

			err := v.Validate(payload)
			var typeErr *TypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, tc.wantField, typeErr.Field)
			assert.Equal(t, tc.wantActual, typeErr.Actual)
		})
	}
}

func TestValidate_TitleLength(t *testing.T) {
	t.Parallel()

	v := NewValidatorAt(fixedNow)

	payload := validPayload()
	payload["title"] = strings.Repeat("a", 1000)
	require.NoError(t, v.Validate(payload), "title at the limit is valid")

	payload["title"] = strings.Repeat("a", 1001)
	err := v.Validate(payload)
	var lengthErr *LengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, "title", lengthErr.Field)
	assert.Equal(t, 1000, lengthErr.Limit)
	assert.Equal(t, 1001, lengthErr.Actual)
}

func TestValidate_TitleLengthCountsRunes(t *testing.T) {
	t.Parallel()

	v := NewValidatorAt(fixedNow)

	// 1000 multi-byte runes is within the limit even though the byte
	// count is larger.
	payload := validPayload()
	payload["title"] = strings.Repeat("ü", 1000)
	require.NoError(t, v.Validate(payload))
}

func TestValidate_ISBNFormat(t *testing.T) {
	t.Parallel()

	v := NewValidatorAt(fixedNow)

	payload := validPayload()
	payload["isbn"] = "not-an-isbn"

	err := v.Validate(payload)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "isbn", formatErr.Field)

	// A non-string ISBN is also a format error, not a type error.
	payload["isbn"] = float64(9780134190440)
	err = v.Validate(payload)
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "isbn", formatErr.Field)
}

func TestValidate_PublishedRange(t *testing.T) {
	t.Parallel()

	v := NewValidatorAt(fixedNow)

	tests := []struct {
		name      string
		published float64
		wantOK    bool
		wantBound string
	}{
		{name: "lower bound", published: -3000, wantOK: true},
		{name: "below lower bound", published: -3001, wantBound: "must be no earlier than -3000"},
		{name: "current year plus slack", published: 2035, wantOK: true},
		{name: "beyond slack", published: 2036, wantBound: "must be no later than 2035"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			payload := validPayload()
			payload["published"] = tc.published

			err := v.Validate(payload)
			if tc.wantOK {
				require.NoError(t, err)
				return
			}
			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, "published", rangeErr.Field)
			assert.Equal(t, tc.wantBound, rangeErr.Message)
		})
	}
}

func TestValidate_OrderPresenceBeforeTypes(t *testing.T) {
	t.Parallel()

	v := NewValidatorAt(fixedNow)

	// Both a missing field and a type mismatch: presence wins.
	payload := map[string]any{
		"title":     float64(42),
		"published": float64(1965),
	}

	err := v.Validate(payload)
	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"author"}, missingErr.Fields)
}

func TestValidate_OrderOptionalBeforeRange(t *testing.T) {
	t.Parallel()

	v := NewValidatorAt(fixedNow)

	// Both a bad ISBN and an out-of-range year: the optional-field check
	// runs first.
	payload := validPayload()
	payload["isbn"] = "bogus"
	payload["published"] = float64(9999)

	err := v.Validate(payload)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "isbn", formatErr.Field)
}

func TestValidate_OptionalNullsIgnored(t *testing.T) {
	t.Parallel()

	v := NewValidatorAt(fixedNow)

	payload := validPayload()
	payload["isbn"] = nil
	payload["genre"] = nil
	payload["pages"] = nil

	require.NoError(t, v.Validate(payload))
}

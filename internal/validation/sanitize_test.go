package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen_RejectsUnsafeInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		field     string
		value     string
		wantField string
	}{
		{name: "script tag", field: "title", value: "<script>alert(1)</script>", wantField: "title"},
		{name: "closing tag only", field: "description", value: "harmless</b>", wantField: "description"},
		{name: "javascript protocol", field: "publisher", value: "javascript:alert(1)", wantField: "publisher"},
		{name: "javascript protocol with spaces", field: "genre", value: "JavaScript : void(0)", wantField: "genre"},
		{name: "vbscript protocol", field: "author", value: "vbscript:msgbox", wantField: "author"},
		{name: "data html uri", field: "description", value: "data:text/html,<b>x</b>", wantField: "description"},
		{name: "inline event handler", field: "title", value: `x onerror=alert(1)`, wantField: "title"},
		{name: "union select", field: "title", value: "1 UNION SELECT password FROM users", wantField: "title"},
		{name: "union all select", field: "author", value: "x union all select *", wantField: "author"},
		{name: "drop table", field: "genre", value: "Robert'); DROP TABLE students", wantField: "genre"},
		{name: "insert into", field: "description", value: "insert into books values", wantField: "description"},
		{name: "delete from", field: "title", value: "DELETE FROM books", wantField: "title"},
		{name: "classic tautology", field: "author", value: "' OR '1'='1", wantField: "author"},
		{name: "comment then drop", field: "title", value: "x -- drop everything", wantField: "title"},
		{name: "null byte", field: "title", value: "abc\x00def", wantField: "title"},
		{name: "embedded newline", field: "isbn", value: "978\n3161484100", wantField: "isbn"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			payload := map[string]any{tc.field: tc.value}
			err := Screen(payload)
			var unsafeErr *UnsafeInputError
			require.ErrorAs(t, err, &unsafeErr)
			assert.Equal(t, tc.wantField, unsafeErr.Field)
		})
	}
}

func TestScreen_AllowsOrdinaryText(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"title":       "Crime and Punishment",
		"author":      "Fyodor Dostoevsky",
		"genre":       "Literary Fiction",
		"description": "A novel about morality, guilt, and redemption. Less than 500 pages.",
		"publisher":   "Penguin Classics",
		"isbn":        "978-0-14-305814-4",
	}

	require.NoError(t, Screen(payload))
}

func TestScreen_TrimsPassingFields(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"title":  "  Dune  ",
		"author": "\tFrank Herbert",
	}

	require.NoError(t, Screen(payload))
	assert.Equal(t, "Dune", payload["title"])
	assert.Equal(t, "Frank Herbert", payload["author"])
}

func TestScreen_SkipsNonStringValues(t *testing.T) {
	t.Parallel()

	// Wrongly-typed values are left untouched for the field validator to
	// report as type errors.
	payload := map[string]any{
		"title":     float64(42),
		"published": float64(1965),
		"pages":     float64(200),
	}

	require.NoError(t, Screen(payload))
	assert.Equal(t, float64(42), payload["title"])
}

func TestScreen_IgnoresUnscreenedFields(t *testing.T) {
	t.Parallel()

	// The description field is screened but unknown fields are not.
	payload := map[string]any{
		"title": "Dune",
		"notes": "<script>alert(1)</script>",
	}

	require.NoError(t, Screen(payload))
}

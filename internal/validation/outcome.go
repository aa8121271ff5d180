package validation

import (
	"fmt"
	"strings"
)

// The validator reports exactly one outcome per payload. Each failure kind
// is its own error type carrying only the fields that kind needs, so
// callers can switch on the concrete type with errors.As instead of
// parsing message strings.

// MissingFieldsError reports every required field that is absent or blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// TypeError reports the first field whose JSON kind does not match the
// expected kind.
type TypeError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("field %q must be of type %s, got %s", e.Field, e.Expected, e.Actual)
}

// LengthError reports a string field that exceeds its maximum length.
type LengthError struct {
	Field  string
	Limit  int
	Actual int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("field %q exceeds maximum length of %d characters (got %d)", e.Field, e.Limit, e.Actual)
}

// FormatError reports a field whose value does not match its required
// format (currently only the ISBN field).
type FormatError struct {
	Field string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("field %q has an invalid format", e.Field)
}

// RangeError reports a numeric field outside its allowed range. Message
// names the violated bound.
type RangeError struct {
	Field   string
	Message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("field %q is out of range: %s", e.Field, e.Message)
}

// UnsafeInputError reports a field rejected by the security screen. The
// matched pattern is intentionally not carried: the response must not act
// as an oracle for which filter fired.
type UnsafeInputError struct {
	Field string
}

func (e *UnsafeInputError) Error() string {
	return fmt.Sprintf("field %q contains disallowed content", e.Field)
}

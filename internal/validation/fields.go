package validation

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/librisdev/libris/internal/domain"
)

// requiredFields are validated for presence first, in this order.
var requiredFields = []string{"title", "author", "published"}

// optionalFields are type-checked in this order; the first failure wins.
var optionalFields = []string{"isbn", "genre", "description", "pages", "publisher"}

// Validator checks a decoded book payload against the field rules. It is
// pure: no I/O, and the current year comes from an injectable clock so the
// published-year bound is testable.
type Validator struct {
	now func() time.Time
}

// NewValidator returns a Validator using the wall clock.
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorAt returns a Validator pinned to the given clock.
func NewValidatorAt(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// Validate applies the field rules to payload in strict order and returns
// the single outcome for the first rule that fails, or nil if the payload
// is valid. The order determines which error is reported when several
// violations coexist:
//
//  1. presence of all required fields (aggregated into one outcome)
//  2. types of required fields (first mismatch only)
//  3. title length
//  4. types/format of optional fields, in isbn, genre, description,
//     pages, publisher order
//  5. published-year range
func (v *Validator) Validate(payload map[string]any) error {
	var missing []string
	for _, field := range requiredFields {
		if isBlank(payload[field]) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	for _, field := range []string{"title", "author"} {
		if _, ok := payload[field].(string); !ok {
			return &TypeError{Field: field, Expected: "string", Actual: kindOf(payload[field])}
		}
	}
	published, ok := asInt(payload["published"])
	if !ok {
		return &TypeError{Field: "published", Expected: "integer", Actual: kindOf(payload["published"])}
	}

	title := payload["title"].(string)
	if n := utf8.RuneCountInString(title); n > domain.TitleMaxLength {
		return &LengthError{Field: "title", Limit: domain.TitleMaxLength, Actual: n}
	}

	for _, field := range optionalFields {
		value, present := payload[field]
		if !present || value == nil {
			continue
		}
		switch field {
		case "isbn":
			s, ok := value.(string)
			if !ok || !IsValidISBN(s) {
				return &FormatError{Field: "isbn"}
			}
		case "pages":
			pages, ok := asInt(value)
			if !ok || pages < 0 {
				return &TypeError{Field: "pages", Expected: "non-negative integer", Actual: kindOf(value)}
			}
		default:
			if _, ok := value.(string); !ok {
				return &TypeError{Field: field, Expected: "string", Actual: kindOf(value)}
			}
		}
	}

	maxYear := domain.PublishedYearMax(v.now())
	if published < domain.PublishedYearMin {
		return &RangeError{
			Field:   "published",
			Message: fmt.Sprintf("must be no earlier than %d", domain.PublishedYearMin),
		}
	}
	if published > maxYear {
		return &RangeError{
			Field:   "published",
			Message: fmt.Sprintf("must be no later than %d", maxYear),
		}
	}

	return nil
}

// isBlank reports whether a required field should count as missing:
// absent, null, or an empty string.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}

// asInt converts a decoded JSON number to an int when it carries no
// fractional part. encoding/json decodes all numbers as float64.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.Trunc(n) != n || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

// kindOf names the JSON kind of a decoded value for type-error reporting.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, int:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

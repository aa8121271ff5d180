package validation

import (
	"regexp"
	"strings"
)

// isbnPrefixPattern strips an optional "ISBN", "ISBN-10" or "ISBN-13"
// marker, with optional colon, from the front of the value.
var isbnPrefixPattern = regexp.MustCompile(`(?i)^ISBN(?:-1[03])?:?\s*`)

var (
	isbn10Pattern = regexp.MustCompile(`^[0-9]{9}[0-9Xx]$`)
	isbn13Pattern = regexp.MustCompile(`^[0-9]{13}$`)
)

// IsValidISBN reports whether s is a well-formed ISBN-10 or ISBN-13.
// Hyphens and spaces are accepted as group separators anywhere in the
// number; the check character may be X for ISBN-10 only. The checksum
// itself is not verified, matching the format-only contract.
func IsValidISBN(s string) bool {
	s = strings.TrimSpace(s)
	s = isbnPrefixPattern.ReplaceAllString(s, "")

	digits := strings.NewReplacer("-", "", " ", "").Replace(s)
	switch len(digits) {
	case 10:
		return isbn10Pattern.MatchString(digits)
	case 13:
		return isbn13Pattern.MatchString(digits)
	default:
		return false
	}
}

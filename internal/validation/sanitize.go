package validation

import (
	"regexp"
	"strings"
)

// screenedFields is the fixed set of string fields the security screen
// inspects, in scan order.
var screenedFields = []string{"title", "author", "isbn", "genre", "description", "publisher"}

// unsafePatterns is the pattern battery applied to every screened field.
// This is a coarse reject filter layered in front of parameterized
// queries, not a security boundary of its own; the store layer must use
// placeholders regardless of what passes here.
var unsafePatterns = []*regexp.Regexp{
	// Markup and script tags.
	regexp.MustCompile(`(?i)<\s*/?\s*[a-z!][^>]*>`),
	// Script-protocol references.
	regexp.MustCompile(`(?i)(?:javascript|vbscript)\s*:`),
	regexp.MustCompile(`(?i)data\s*:\s*text/html`),
	// Inline event-handler attributes.
	regexp.MustCompile(`(?i)\bon[a-z]+\s*=`),
	// SQL keyword fragments.
	regexp.MustCompile(`(?i)\b(?:union\s+(?:all\s+)?select|insert\s+into|delete\s+from|drop\s+(?:table|database)|update\s+\S+\s+set|truncate\s+table)\b`),
	regexp.MustCompile(`(?i)'\s*or\s+'?\d+'?\s*=\s*'?\d+`),
	regexp.MustCompile(`(?:--|;)\s*(?i:drop|delete|insert|update|select)\b`),
	// C0/C1 control characters, including NUL, CR and LF.
	regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`),
}

// Screen scans the screened string fields of payload against the pattern
// battery. On the first match it returns an UnsafeInputError naming only
// the offending field. Fields that pass are trimmed of surrounding
// whitespace in place. Non-string values are left for the field validator
// to report.
func Screen(payload map[string]any) error {
	for _, field := range screenedFields {
		value, present := payload[field]
		if !present {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		for _, pattern := range unsafePatterns {
			if pattern.MatchString(s) {
				return &UnsafeInputError{Field: field}
			}
		}
		payload[field] = strings.TrimSpace(s)
	}
	return nil
}

package export

import "strings"

// Sanitize strips every character outside the printable 7-bit ASCII
// range from a free-text field. A nil (absent) value passes through
// unchanged rather than becoming an empty string.
func Sanitize(s *string) *string {
	if s == nil {
		return nil
	}
	clean := SanitizeString(*s)
	return &clean
}

// SanitizeString strips every character outside the printable 7-bit
// ASCII range.
func SanitizeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x20 && r < 0x7F {
			b.WriteRune(r)
		}
	}
	return b.String()
}

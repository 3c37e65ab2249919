package domain

import (
	"net/mail"
	"strings"
	"unicode"
)

// SanitizeText strips markup and control characters from free-text input and
// collapses the surrounding whitespace. Tag contents are dropped wholesale, so
// "<b>Ada</b>" becomes "Ada" and "<script>x</script>" becomes "x".
func SanitizeText(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	inTag := false
	for _, r := range raw {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case inTag:
		case r == '\n' || r == '\t':
			b.WriteRune(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ValidEmail reports whether the input is a plain RFC 5322 address without a
// display name.
func ValidEmail(raw string) bool {
	addr, err := mail.ParseAddress(raw)
	return err == nil && addr.Address == raw
}

// Package parsing turns raw extracted resume text into a structured section map.
package parsing

import (
	"strings"
	"unicode"
)

// bulletRune is the one bullet glyph preserved by normalization; PDF
// extractors commonly emit it for list items.
const bulletRune = '•'

// Normalize strips a raw text payload down to the allow-listed character set
// (ASCII letters, digits, whitespace, hyphen, bullet) and trims surrounding
// whitespace. It is total and idempotent.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if allowedRune(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == bulletRune:
		return true
	default:
		return unicode.IsSpace(r)
	}
}

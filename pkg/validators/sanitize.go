package validators

import (
	"strings"
	"unicode"
)

// SanitizeString trims input and caps it at maxLen runes. The result never
// ends in whitespace, even when the cut lands on a space.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 {
		runes := []rune(trimmed)
		if len(runes) > maxLen {
			return strings.TrimRightFunc(string(runes[:maxLen]), unicode.IsSpace)
		}
	}
	return trimmed
}

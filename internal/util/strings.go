package util

import (
	"strings"
	"unicode"
)

// Capitalize trims the value and uppercases the first letter of each word,
// matching the normalization the price dataset expects for its filters.
func Capitalize(value string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	for i, field := range fields {
		runes := []rune(field)
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}

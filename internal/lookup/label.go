package lookup

import (
	"strings"
)

// LegacyLabel turns a camel-cased lookup value into its legacy OData label
// by inserting a space before every uppercase letter except a leading one:
// "SquareFeet" becomes "Square Feet" and "US" becomes "U S". All other
// characters are kept as they are, so "Forced Air" becomes "Forced  Air".
func LegacyLabel(value string) string {
	if !hasUpper(value) {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 4)
	for i, r := range value {
		if i > 0 && isUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasUpper(s string) bool {
	for _, r := range s {
		if isUpper(r) {
			return true
		}
	}
	return false
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

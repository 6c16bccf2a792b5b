package stringutil

import (
	"strconv"
	"strings"
)

// Currency symbols that may prefix a price string.
const currencyChars = "$£€"

// Before returns the part of `s` before the first occurrence of `sep`.
// Returns `s` unchanged when the separator isn't present.
func Before(s, sep string) string {
	if idx := strings.Index(s, sep); idx != -1 {
		return s[:idx]
	}
	return s
}

// ParseMoney parses a price string like "$3.99" into its numeric value,
// tolerating a leading currency symbol. The second return value is false when
// the string holds no parseable amount.
func ParseMoney(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	for _, c := range currencyChars {
		s = strings.TrimPrefix(s, string(c))
	}
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

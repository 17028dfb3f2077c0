package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims the string and collapses any run of whitespace
// into a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

func NormalizeTitle(title string) string {
	return TrimAndNormalize(title)
}

// NormalizePhone strips spaces, dashes and parentheses, keeping digits and
// a leading plus sign.
func NormalizePhone(phone string) string {
	var result strings.Builder
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			result.WriteRune(r)
		case r == '+' && i == 0:
			result.WriteRune(r)
		}
	}
	return result.String()
}

package domain

import (
	"regexp"
	"strings"
)

// emailPattern accepts local-part@domain.tld in ASCII, case-insensitively.
var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+\-]+@[A-Z0-9.\-]+\.[A-Z]{2,}$`)

// NormalizeEmail trims surrounding whitespace. Case is preserved so that
// sign-in matches the stored address exactly.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// IsValidEmail reports whether email matches the accepted address pattern.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeText trims leading/trailing whitespace and compresses runs of
// spaces into one.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

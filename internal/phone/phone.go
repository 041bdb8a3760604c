// Package phone canonicalizes Mongolian and international phone numbers
// into E.164 form.
package phone

import (
	"regexp"
	"strings"
)

var (
	nonPhoneChars = regexp.MustCompile(`[^\d+]`)
	nonDigits     = regexp.MustCompile(`\D`)

	plusE164    = regexp.MustCompile(`^\+\d{6,15}$`)
	national8   = regexp.MustCompile(`^\d{8}$`)
	mongolia976 = regexp.MustCompile(`^976\d{8}$`)
	intlDigits  = regexp.MustCompile(`^\d{6,15}$`)
)

// NormalizeE164 converts a phone number in any of the accepted input shapes
// to E.164. A bare 8-digit number is treated as a Mongolian national number
// and prefixed with +976. Returns false when no valid number can be formed.
func NormalizeE164(input string) (string, bool) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return "", false
	}

	cleaned := nonPhoneChars.ReplaceAllString(raw, "")

	if strings.HasPrefix(cleaned, "+") {
		if plusE164.MatchString(cleaned) {
			return cleaned, true
		}
		return "", false
	}

	digits := nonDigits.ReplaceAllString(cleaned, "")

	switch {
	case national8.MatchString(digits):
		return "+976" + digits, true
	case mongolia976.MatchString(digits):
		return "+" + digits, true
	case intlDigits.MatchString(digits):
		return "+" + digits, true
	}
	return "", false
}

package utils

import "strings"

// Saudi mobile numbers: local form 05XXXXXXXX, international form
// +9665XXXXXXXX / 9665XXXXXXXX. The booking and visit forms accept either.

// ValidatePhoneNumber reports whether raw looks like a Saudi mobile number.
func ValidatePhoneNumber(raw string) bool {
	digits := digitsOnly(raw)
	switch {
	case len(digits) == 10 && strings.HasPrefix(digits, "05"):
		return true
	case len(digits) == 12 && strings.HasPrefix(digits, "9665"):
		return true
	}
	return false
}

// NormalizePhoneNumber converts an accepted number to the local 05XXXXXXXX
// form. Invalid input is returned unchanged.
func NormalizePhoneNumber(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) == 12 && strings.HasPrefix(digits, "9665") {
		return "0" + digits[3:]
	}
	if len(digits) == 10 && strings.HasPrefix(digits, "05") {
		return digits
	}
	return raw
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

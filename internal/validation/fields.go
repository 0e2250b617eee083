package validation

import (
	"regexp"
	"strings"
)

// emailRe matches the minimal local@domain.tld shape. Deliverability is not
// our problem; we only reject obvious garbage before it reaches the store.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the email has a plausible local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsNotEmpty reports whether the value contains any non-whitespace characters.
func IsNotEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// PasswordsMatch reports whether the password and its confirmation are equal.
func PasswordsMatch(password, confirm string) bool {
	return password == confirm
}

// IsStrongPassword reports whether the password meets all strength rules:
// at least 8 characters, one lowercase letter, one uppercase letter, one digit.
func IsStrongPassword(password string) bool {
	return PasswordError(password) == ""
}

// PasswordError returns a human-readable reason for a failing password, or ""
// if the password is acceptable. Rules are checked in a fixed order so the
// reported reason is deterministic: length, then lowercase, uppercase, digit.
func PasswordError(password string) string {
	if len(password) < 8 {
		return "password must be at least 8 characters"
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return "password must contain at least one lowercase letter"
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return "password must contain at least one uppercase letter"
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return "password must contain at least one digit"
	}
	return ""
}

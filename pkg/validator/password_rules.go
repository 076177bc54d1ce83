package validator

import "regexp"

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)

	// RE2 has no lookahead, so the character class and minimum length are
	// matched separately from the per-class presence checks.
	alphanumericMin8Regex = regexp.MustCompile(`^[A-Za-z0-9]{8,}$`)
)

// IsStrongPassword reports whether s has at least one lowercase letter, one
// uppercase letter and one digit, is at least 8 characters long, and contains
// only ASCII letters and digits.
func IsStrongPassword(s string) bool {
	return alphanumericMin8Regex.MatchString(s) &&
		lowercaseRegex.MatchString(s) &&
		uppercaseRegex.MatchString(s) &&
		digitRegex.MatchString(s)
}

// PasswordStrength returns the password policy rule. There is a single policy
// regardless of the environment the application runs in.
func PasswordStrength(message string) FieldRule {
	return FieldRule{Name: "password-strength", Check: IsStrongPassword, Message: message}
}

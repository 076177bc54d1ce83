package validator

import "regexp"

var (
	// emailRegex accepts a local part of letters, digits and . _ % + -, an
	// "@", a domain of letters, digits, dots and hyphens, and a top level
	// label of at least two letters.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// phoneRegex accepts exactly ten digits, optionally preceded by a 1-3
	// digit country code that may start with "+" and may be followed by a
	// single space or hyphen.
	phoneRegex = regexp.MustCompile(`^(?:\+?[0-9]{1,3}[- ]?)?[0-9]{10}$`)
)

// IsEmail reports whether s has the shape of an e-mail address.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPhone reports whether s has the shape of a phone number.
func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsEmailOrPhone reports whether s is either an e-mail address or a phone
// number. Empty input is rejected.
func IsEmailOrPhone(s string) bool {
	if s == "" {
		return false
	}
	return IsEmail(s) || IsPhone(s)
}

// Email returns a rule accepting e-mail addresses only.
func Email(message string) FieldRule {
	return FieldRule{Name: "email", Check: IsEmail, Message: message}
}

// Phone returns a rule accepting phone numbers only.
func Phone(message string) FieldRule {
	return FieldRule{Name: "phone", Check: IsPhone, Message: message}
}

// EmailOrPhone returns the login identifier rule shared by the login and
// sign-up forms.
func EmailOrPhone(message string) FieldRule {
	return FieldRule{Name: "is-email-or-phone", Check: IsEmailOrPhone, Message: message}
}

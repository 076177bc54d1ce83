package validator

import "unicode/utf8"

// MinLength returns a rule requiring at least min characters.
func MinLength(min int, message string) FieldRule {
	return FieldRule{
		Name: "min-length",
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) >= min
		},
		Message: message,
	}
}

// Optional wraps rule so that empty values pass without being checked.
func Optional(rule FieldRule) FieldRule {
	check := rule.Check
	if check == nil {
		return rule
	}
	rule.Check = func(value string) bool {
		return value == "" || check(value)
	}
	return rule
}

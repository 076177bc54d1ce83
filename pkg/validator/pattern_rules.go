package validator

import "regexp"

// Matches returns a rule that passes when pattern matches the whole value.
// The pattern should be compiled once at package level.
func Matches(name string, pattern *regexp.Regexp, message string) FieldRule {
	var check func(string) bool
	if pattern != nil {
		check = pattern.MatchString
	}
	return FieldRule{Name: name, Check: check, Message: message}
}

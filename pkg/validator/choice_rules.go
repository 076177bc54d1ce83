package validator

import "slices"

// OneOf returns a rule that passes when value equals one of allowed.
func OneOf(allowed []string, message string) FieldRule {
	options := slices.Clone(allowed)
	return FieldRule{
		Name: "one-of",
		Check: func(value string) bool {
			return slices.Contains(options, value)
		},
		Message: message,
	}
}

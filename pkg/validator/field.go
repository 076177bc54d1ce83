package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

// FieldSpec describes how a single form field is validated.
// It is immutable once returned by NewField.
type FieldSpec struct {
	name             string
	label            string
	required         bool
	requiredMessage  string
	trim             bool
	sanitizers       []func(string) string
	rules            []FieldRule
	maxLength        int
	maxLengthMessage string
}

// FieldOption configures a FieldSpec.
type FieldOption func(*FieldSpec)

// WithLabel sets the human readable field name used in the required message.
func WithLabel(label string) FieldOption {
	return func(f *FieldSpec) { f.label = label }
}

// Required marks the field as required.
func Required() FieldOption {
	return func(f *FieldSpec) { f.required = true }
}

// WithRequiredMessage marks the field as required with a custom message.
func WithRequiredMessage(message string) FieldOption {
	return func(f *FieldSpec) {
		f.required = true
		f.requiredMessage = message
	}
}

// Trimmed trims surrounding whitespace before any check runs.
func Trimmed() FieldOption {
	return func(f *FieldSpec) { f.trim = true }
}

// WithSanitizers appends value transforms applied after trimming and before
// the required check.
func WithSanitizers(fns ...func(string) string) FieldOption {
	return func(f *FieldSpec) { f.sanitizers = append(f.sanitizers, fns...) }
}

// WithRules appends rules to the field's chain. Order is evaluation order.
func WithRules(rules ...FieldRule) FieldOption {
	return func(f *FieldSpec) { f.rules = append(f.rules, rules...) }
}

// WithMaxLength bounds the value length in characters. The bound is checked
// after the rule chain.
func WithMaxLength(n int, message string) FieldOption {
	return func(f *FieldSpec) {
		f.maxLength = n
		f.maxLengthMessage = message
	}
}

// NewField builds a FieldSpec, returning ErrInvalidFieldSpec for malformed
// configuration.
func NewField(name string, opts ...FieldOption) (FieldSpec, error) {
	f := FieldSpec{name: name}
	for _, opt := range opts {
		opt(&f)
	}

	if strings.TrimSpace(f.name) == "" {
		return FieldSpec{}, fmt.Errorf("%w: field name is empty", ErrInvalidFieldSpec)
	}
	if f.label == "" {
		f.label = f.name
	}
	if f.requiredMessage == "" {
		f.requiredMessage = f.label + " is required"
	}
	if f.maxLength < 0 {
		return FieldSpec{}, fmt.Errorf("%w: field %q has negative max length", ErrInvalidFieldSpec, f.name)
	}
	if f.maxLength > 0 && f.maxLengthMessage == "" {
		f.maxLengthMessage = fmt.Sprintf("%s cannot exceed %d characters", f.label, f.maxLength)
	}
	for _, fn := range f.sanitizers {
		if fn == nil {
			return FieldSpec{}, fmt.Errorf("%w: field %q has a nil sanitizer", ErrInvalidFieldSpec, f.name)
		}
	}

	seen := make(map[string]bool, len(f.rules))
	for _, r := range f.rules {
		if err := r.validate(); err != nil {
			return FieldSpec{}, fmt.Errorf("field %q: %w", f.name, err)
		}
		if seen[r.Name] {
			return FieldSpec{}, fmt.Errorf("%w: field %q declares rule %q twice", ErrInvalidFieldSpec, f.name, r.Name)
		}
		seen[r.Name] = true
	}

	// Detach slices from the option closures so the spec stays immutable.
	f.rules = append([]FieldRule(nil), f.rules...)
	f.sanitizers = append([]func(string) string(nil), f.sanitizers...)

	return f, nil
}

// MustField is like NewField but panics on configuration errors.
func MustField(name string, opts ...FieldOption) FieldSpec {
	f, err := NewField(name, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f FieldSpec) Name() string { return f.name }

func (f FieldSpec) Label() string { return f.label }

func (f FieldSpec) IsRequired() bool { return f.required }

// Rules returns a copy of the rule chain.
func (f FieldSpec) Rules() []FieldRule {
	return append([]FieldRule(nil), f.rules...)
}

// Sanitize applies trimming and the configured sanitizers.
func (f FieldSpec) Sanitize(value string) string {
	if f.trim {
		value = sanitizer.Trim(value)
	}
	return sanitizer.Apply(value, f.sanitizers...)
}

// Check validates a raw value and returns the sanitized value together with
// the failing rule and message. ok is true when the value passes.
func (f FieldSpec) Check(raw string) (value string, failure ValidationError, ok bool) {
	value = f.Sanitize(raw)

	if f.required && value == "" {
		return value, ValidationError{Field: f.name, Rule: "required", Message: f.requiredMessage}, false
	}

	for _, r := range f.rules {
		if !r.Check(value) {
			return value, ValidationError{Field: f.name, Rule: r.Name, Message: r.Message}, false
		}
	}

	if f.maxLength > 0 && utf8.RuneCountInString(value) > f.maxLength {
		return value, ValidationError{Field: f.name, Rule: "max-length", Message: f.maxLengthMessage}, false
	}

	return value, ValidationError{}, true
}

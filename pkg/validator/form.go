package validator

import (
	"fmt"
	"strings"
)

// FormSpec is an ordered, immutable set of field specs.
type FormSpec struct {
	name   string
	fields []FieldSpec
	index  map[string]int
}

// NewForm builds a FormSpec from fields in display order.
func NewForm(name string, fields ...FieldSpec) (*FormSpec, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: form name is empty", ErrInvalidFormSpec)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: form %q has no fields", ErrInvalidFormSpec, name)
	}

	f := &FormSpec{
		name:   name,
		fields: make([]FieldSpec, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, field := range fields {
		if field.name == "" {
			return nil, fmt.Errorf("%w: form %q has a zero value field, use NewField", ErrInvalidFormSpec, name)
		}
		if _, dup := f.index[field.name]; dup {
			return nil, fmt.Errorf("%w: form %q declares field %q twice", ErrInvalidFormSpec, name, field.name)
		}
		f.index[field.name] = len(f.fields)
		f.fields = append(f.fields, field)
	}

	return f, nil
}

// MustForm is like NewForm but panics on configuration errors.
// Intended for package level form declarations.
func MustForm(name string, fields ...FieldSpec) *FormSpec {
	f, err := NewForm(name, fields...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *FormSpec) Name() string { return f.name }

// Fields returns field names in declaration order.
func (f *FormSpec) Fields() []string {
	names := make([]string, len(f.fields))
	for i, field := range f.fields {
		names[i] = field.name
	}
	return names
}

// Field returns the spec for name.
func (f *FormSpec) Field(name string) (FieldSpec, bool) {
	i, ok := f.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return f.fields[i], true
}

// Validate checks every declared field. Missing keys are treated as empty
// values; keys the form does not declare are ignored.
func (f *FormSpec) Validate(input map[string]string) Result {
	res := newResult(f.name, len(f.fields))
	for _, field := range f.fields {
		value, failure, ok := field.Check(input[field.name])
		res.record(field.name, value, failure, ok)
	}
	return res
}

// ValidateField checks a single field, as done when an input loses focus.
func (f *FormSpec) ValidateField(name, value string) (Result, error) {
	field, ok := f.Field(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q in form %q", ErrUnknownField, name, f.name)
	}

	res := newResult(f.name, 1)
	sanitized, failure, ok := field.Check(value)
	res.record(name, sanitized, failure, ok)
	return res, nil
}

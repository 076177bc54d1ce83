package validator

// Result is the outcome of validating a form or a single field.
type Result struct {
	Form   string
	Valid  bool
	Errors map[string]string // field -> first failing message, absent when valid
	Values map[string]string // field -> sanitized value

	failures ValidationErrors
}

func newResult(form string, size int) Result {
	return Result{
		Form:   form,
		Valid:  true,
		Errors: make(map[string]string, size),
		Values: make(map[string]string, size),
	}
}

func (r *Result) record(field, value string, failure ValidationError, ok bool) {
	r.Values[field] = value
	if ok {
		return
	}
	r.Valid = false
	r.Errors[field] = failure.Message
	r.failures = append(r.failures, failure)
}

// Message returns the error message for field, or an empty string.
func (r Result) Message(field string) string {
	return r.Errors[field]
}

// Value returns the sanitized value for field.
func (r Result) Value(field string) string {
	return r.Values[field]
}

// Err returns nil when the result is valid, otherwise ValidationErrors in
// field declaration order.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return append(ValidationErrors(nil), r.failures...)
}

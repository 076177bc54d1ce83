package auth

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// FieldErrorID is the DOM id of the element holding a field's error message.
func FieldErrorID(form, field string) string {
	return form + "-" + field + "-error"
}

// FormStatusID is the DOM id of the element holding a form's status message.
func FormStatusID(form string) string {
	return form + "-status"
}

// FieldError renders the error element for a field. An empty message renders
// an empty element, clearing a previous error.
func FieldError(form, field, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="%s" class="field-error" role="alert">%s</p>`,
			FieldErrorID(form, field), templ.EscapeString(message))
		return err
	})
}

func FormStatus(form, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="%s" class="form-status">%s</div>`,
			FormStatusID(form), templ.EscapeString(message))
		return err
	})
}

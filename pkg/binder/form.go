package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory bounds multipart parsing.
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies using `form` struct tags. For GET requests the query string is used.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if isDataStar(r) {
			return ErrBinderNotApplicable
		}

		switch mt := mediaType(r); {
		case r.Method == http.MethodGet:
			return bindToStruct(v, "form", r.URL.Query(), ErrFailedToParseForm)
		case mt == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
		case mt == "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return bindToStruct(v, "form", r.MultipartForm.Value, ErrFailedToParseForm)
		default:
			return ErrBinderNotApplicable
		}
	}
}

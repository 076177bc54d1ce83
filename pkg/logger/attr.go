package logger

import (
	"log/slog"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Form records the form name under the key "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Fields records the names of fields that failed validation.
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// CartID records the cart identifier under the key "cart_id".
func CartID(id string) slog.Attr {
	return slog.String("cart_id", id)
}

// Contact records a masked e-mail address or phone number under the key "contact".
func Contact(identifier string) slog.Attr {
	if identifier == "" {
		return slog.Attr{}
	}
	return slog.String("contact", sanitizer.MaskContact(identifier))
}

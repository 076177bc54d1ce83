// Package binder populates request structs from form posts, JSON bodies and
// datastar signals.
//
// Every binder returns ErrBinderNotApplicable when the request does not carry
// its payload kind, so several binders can be chained and the first
// applicable one wins:
//
//	handler.WithBinders[handler.Context, signUpRequest](binder.Signals(), binder.Form(), binder.JSON())
//
// Form binding reads `form` struct tags and falls back to the lowercased
// field name. JSON and signal binding use `json` tags.
package binder

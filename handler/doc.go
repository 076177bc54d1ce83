// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value populated by the
// configured binders, and returns a Response that renders itself. Responses
// cover JSON, templ components (sent as datastar element patches when the
// request comes from the datastar client) and empty bodies.
//
//	type loginRequest struct {
//		Contact  string `form:"contact" json:"contact"`
//		Password string `form:"password" json:"password"`
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinders[handler.Context, loginRequest](binder.Signals(), binder.Form(), binder.JSON()),
//		handler.WithErrorHandler[handler.Context, loginRequest](errHandler),
//	))
//
// Errors returned from binders or Render reach the ErrorHandler. HTTPError
// carries a status code; validator.ValidationErrors map to 422 with
// per-field messages.
package handler

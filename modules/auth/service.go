package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/storefront/handler"
	"github.com/dmitrymomot/storefront/pkg/binder"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

// Credentials is a validated login submission.
type Credentials struct {
	Contact  string
	Password string
}

// Registration is a validated sign-up submission.
type Registration struct {
	Name     string
	Contact  string
	Password string
}

// Submitter receives forms that passed validation. Implementations return
// ErrInvalidCredentials or ErrAlreadyRegistered to reject a submission.
type Submitter interface {
	Login(ctx context.Context, c Credentials) error
	SignUp(ctx context.Context, r Registration) error
}

type acceptAll struct{}

func (acceptAll) Login(context.Context, Credentials) error { return nil }
func (acceptAll) SignUp(context.Context, Registration) error { return nil }

// Service serves the login and sign-up forms.
type Service struct {
	submitter    Submitter
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	submitLimit  func(http.Handler) http.Handler
}

type Option func(*Service)

// WithSubmitter sets the collaborator for valid submissions. Without it every
// valid submission is accepted.
func WithSubmitter(sub Submitter) Option {
	return func(s *Service) {
		if sub != nil {
			s.submitter = sub
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithErrorHandler(eh handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		s.errorHandler = eh
	}
}

// WithSubmitLimit wraps the submit routes, typically with a rate limiter.
// Blur validation routes are not wrapped.
func WithSubmitLimit(mw func(http.Handler) http.Handler) Option {
	return func(s *Service) {
		s.submitLimit = mw
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		submitter: acceptAll{},
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("auth"))
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{})
	}
	return s
}

// Handle returns the module router:
//
//	POST /login                   submit the login form
//	POST /login/validate/{field}  validate one login field on blur
//	POST /signup                  submit the sign-up form
//	POST /signup/validate/{field} validate one sign-up field on blur
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		if s.submitLimit != nil {
			r.Use(s.submitLimit)
		}
		r.Post("/login", route(s, s.login))
		r.Post("/signup", route(s, s.signUp))
	})
	r.Post("/login/validate/{field}", route(s, s.validateLogin))
	r.Post("/signup/validate/{field}", route(s, s.validateSignUp))
	return r
}

func route[R any](s *Service, h handler.HandlerFunc[handler.Context, R]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binder.Signals(), binder.Form(), binder.JSON()),
		handler.WithErrorHandler[handler.Context, R](s.errorHandler),
	)
}

type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func (r LoginRequest) values() map[string]string {
	return map[string]string{FieldEmail: r.Email, FieldPassword: r.Password}
}

type SignUpRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func (r SignUpRequest) values() map[string]string {
	return map[string]string{FieldName: r.Name, FieldEmail: r.Email, FieldPassword: r.Password}
}

// SubmitResult is the JSON body of an accepted submission.
type SubmitResult struct {
	Form   string `json:"form"`
	Status string `json:"status"`
}

// FieldResult is the JSON body of a blur validation.
type FieldResult struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func (s *Service) login(ctx handler.Context, req LoginRequest) handler.Response {
	return s.submit(ctx, LoginForm(), req.values(), "Signed in", func(res validator.Result) error {
		return s.submitter.Login(ctx, Credentials{
			Contact:  res.Value(FieldEmail),
			Password: res.Value(FieldPassword),
		})
	})
}

func (s *Service) signUp(ctx handler.Context, req SignUpRequest) handler.Response {
	return s.submit(ctx, SignUpForm(), req.values(), "Account created", func(res validator.Result) error {
		return s.submitter.SignUp(ctx, Registration{
			Name:     res.Value(FieldName),
			Contact:  res.Value(FieldEmail),
			Password: res.Value(FieldPassword),
		})
	})
}

func (s *Service) validateLogin(ctx handler.Context, req LoginRequest) handler.Response {
	return s.validateField(ctx, LoginForm(), req.values())
}

func (s *Service) validateSignUp(ctx handler.Context, req SignUpRequest) handler.Response {
	return s.validateField(ctx, SignUpForm(), req.values())
}

func (s *Service) submit(ctx handler.Context, form *validator.FormSpec, input map[string]string, status string, accept func(validator.Result) error) handler.Response {
	res := form.Validate(input)
	if !res.Valid {
		errs := validator.ExtractValidationErrors(res.Err())
		s.log.DebugContext(ctx, "form rejected",
			logger.Form(form.Name()),
			logger.Fields(errs.Fields()),
		)
		if handler.IsDataStar(ctx.Request()) {
			return fieldErrors(form, res)
		}
		return handler.Error(errs)
	}

	if err := accept(res); err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			err = errors.Join(handler.ErrUnauthorized, err)
		case errors.Is(err, ErrAlreadyRegistered):
			err = errors.Join(handler.ErrConflict, err)
		}
		return handler.Error(err)
	}

	s.log.InfoContext(ctx, "form accepted",
		logger.Form(form.Name()),
		logger.Contact(res.Value(FieldEmail)),
	)

	if handler.IsDataStar(ctx.Request()) {
		patches := fieldErrorPatches(form, res)
		patches = append(patches, handler.Patch(FormStatus(form.Name(), status), handler.WithTarget("#"+FormStatusID(form.Name()))))
		return handler.TemplMulti(patches...)
	}
	return handler.JSON(SubmitResult{Form: form.Name(), Status: "accepted"})
}

func (s *Service) validateField(ctx handler.Context, form *validator.FormSpec, input map[string]string) handler.Response {
	field := chi.URLParam(ctx.Request(), "field")
	res, err := form.ValidateField(field, input[field])
	if err != nil {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}

	msg := res.Message(field)
	if handler.IsDataStar(ctx.Request()) {
		return handler.Templ(FieldError(form.Name(), field, msg), handler.WithTarget("#"+FieldErrorID(form.Name(), field)))
	}
	return handler.JSON(FieldResult{Field: field, Valid: res.Valid, Message: msg})
}

// fieldErrorPatches patches every field's error element, clearing the ones
// that passed.
func fieldErrorPatches(form *validator.FormSpec, res validator.Result) []handler.TemplPatch {
	fields := form.Fields()
	patches := make([]handler.TemplPatch, 0, len(fields)+1)
	for _, f := range fields {
		patches = append(patches, handler.Patch(
			FieldError(form.Name(), f, res.Message(f)),
			handler.WithTarget("#"+FieldErrorID(form.Name(), f)),
		))
	}
	return patches
}

func fieldErrors(form *validator.FormSpec, res validator.Result) handler.Response {
	return handler.TemplMulti(fieldErrorPatches(form, res)...)
}

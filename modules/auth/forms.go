package auth

import (
	"regexp"

	"github.com/dmitrymomot/storefront/pkg/validator"
)

// Form names double as the prefix of field error element IDs.
const (
	LoginFormName  = "login"
	SignUpFormName = "signup"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const PasswordMaxLength = 20

const (
	MsgNameRequired     = "Full name is required"
	MsgNameInvalid      = "Name must contain only letters and be between 3–20 characters"
	MsgEmailRequired    = "Email or phone number is required"
	MsgEmailInvalid     = "Must be a valid email or phone number"
	MsgEmailInvalidNew  = "Enter a valid email or phone number"
	MsgPasswordRequired = "Password is required"
	MsgPasswordWeak     = "Password must contain at least 8 characters, one uppercase, one lowercase, and one number."
	MsgPasswordTooLong  = "Password cannot exceed 20 characters"
)

var nameRegex = regexp.MustCompile(`^[A-Za-z\s]{3,20}$`)

type formConfig struct {
	name           string
	withName       bool
	contactMessage string
}

func nameField() validator.FieldSpec {
	return validator.MustField(FieldName,
		validator.WithLabel("Full name"),
		validator.WithRequiredMessage(MsgNameRequired),
		validator.Trimmed(),
		validator.WithRules(validator.Matches("name-format", nameRegex, MsgNameInvalid)),
	)
}

func contactField(invalidMessage string) validator.FieldSpec {
	return validator.MustField(FieldEmail,
		validator.WithLabel("Email or phone number"),
		validator.WithRequiredMessage(MsgEmailRequired),
		validator.Trimmed(),
		validator.WithRules(validator.EmailOrPhone(invalidMessage)),
	)
}

// Passwords are never trimmed.
func passwordField() validator.FieldSpec {
	return validator.MustField(FieldPassword,
		validator.WithLabel("Password"),
		validator.WithRequiredMessage(MsgPasswordRequired),
		validator.WithRules(validator.PasswordStrength(MsgPasswordWeak)),
		validator.WithMaxLength(PasswordMaxLength, MsgPasswordTooLong),
	)
}

func buildForm(cfg formConfig) *validator.FormSpec {
	fields := make([]validator.FieldSpec, 0, 3)
	if cfg.withName {
		fields = append(fields, nameField())
	}
	fields = append(fields, contactField(cfg.contactMessage), passwordField())
	return validator.MustForm(cfg.name, fields...)
}

var (
	loginForm = buildForm(formConfig{
		name:           LoginFormName,
		contactMessage: MsgEmailInvalid,
	})
	signUpForm = buildForm(formConfig{
		name:           SignUpFormName,
		withName:       true,
		contactMessage: MsgEmailInvalidNew,
	})
)

// LoginForm validates email-or-phone and password.
func LoginForm() *validator.FormSpec { return loginForm }

// SignUpForm validates full name, email-or-phone and password.
func SignUpForm() *validator.FormSpec { return signUpForm }

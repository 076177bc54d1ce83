// Package validator implements a declarative field validation engine for
// HTML forms.
//
// A form is described once, at startup, as a FormSpec: an ordered set of
// FieldSpec values, each holding an ordered chain of FieldRule predicates.
// FormSpec.Validate then evaluates raw string input against that description
// and returns a Result holding at most one message per field.
//
// # Evaluation order
//
// For every field the engine:
//
//  1. trims the value (when the field is trimmed) and runs its sanitizers;
//  2. fails with "<Label> is required" if the field is required and empty,
//     without running any rule;
//  3. runs the rule chain top to bottom and stops at the first rule whose
//     Check returns false;
//  4. checks the optional maximum length, after the rule chain, so that a
//     weak and too long password reports the strength message first.
//
// # Rule fragments
//
// Rules shared between forms are exposed as constructors (EmailOrPhone,
// PasswordStrength, Matches, OneOf, ...) that take the user facing message,
// so two forms can reuse one definition while wording the failure
// differently.
//
// # Errors
//
// Malformed specs (empty names, nil predicates, duplicate rules or fields)
// are configuration errors: NewField and NewForm return them wrapped in
// ErrInvalidFieldSpec or ErrInvalidFormSpec, and MustForm panics so a broken
// form never reaches a user. Validation failures are not errors; they are
// reported through Result, which converts to ValidationErrors via Result.Err
// when an error value is needed.
//
// # Usage
//
//	login := validator.MustForm("login",
//	    validator.MustField("email",
//	        validator.WithLabel("Email or phone number"),
//	        validator.Required(),
//	        validator.Trimmed(),
//	        validator.WithRules(validator.EmailOrPhone("Must be a valid email or phone number")),
//	    ),
//	)
//
//	res := login.Validate(map[string]string{"email": " user@example.com "})
//	if !res.Valid {
//	    // res.Errors["email"] holds the message to render
//	}
//
// FormSpec values are immutable and safe for concurrent use.
package validator

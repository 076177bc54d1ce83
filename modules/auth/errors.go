package auth

import "errors"

// Returned by a Submitter to reject a valid form.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("account already registered")
)

var ErrAccountNotFound = errors.New("account not found")

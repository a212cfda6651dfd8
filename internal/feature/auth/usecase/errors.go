package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register a user
	// with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login failure. The same error is
	// used for an unknown email and a wrong password so responses never
	// reveal which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Package usecase implements the business logic for the volunteers feature.
package usecase

import "errors"

// ErrEmailAlreadyExists is returned when a volunteer account already
// exists for the given email. One account per email.
var ErrEmailAlreadyExists = errors.New("volunteer account already exists")

package usecase

import "errors"

// ErrNotFound is returned when no donor aggregate exists for the
// requested email.
var ErrNotFound = errors.New("donor not found")

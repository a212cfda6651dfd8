// Package usecase implements the business logic for the donations feature.
package usecase

import "errors"

// ErrNotFound is returned when no donation exists for the requested id.
// Lookups surface this explicitly instead of a silent null payload.
var ErrNotFound = errors.New("donation not found")

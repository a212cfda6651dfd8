package usecase

import (
	"context"

	"donation_backend/internal/feature/volunteers/domain/entity"
)

// VolunteerRepository abstracts the persistence layer for volunteer
// accounts. Following Go convention: interfaces are defined by the
// consumer (usecase), not the provider (adapters).
type VolunteerRepository interface {
	// Create inserts a volunteer account. It returns
	// ErrEmailAlreadyExists if an account with the same email exists.
	Create(ctx context.Context, v *entity.Volunteer) error

	// ListAll returns every volunteer account in storage order.
	ListAll(ctx context.Context) ([]entity.Volunteer, error)
}

// VolunteerUsecase provides business logic for volunteer operations.
type VolunteerUsecase struct {
	repo VolunteerRepository
}

// NewVolunteerUsecase creates a new VolunteerUsecase with the given repository.
func NewVolunteerUsecase(r VolunteerRepository) *VolunteerUsecase {
	return &VolunteerUsecase{repo: r}
}

// Create registers a volunteer account. The email unique index is the
// uniqueness rule; duplicates surface as ErrEmailAlreadyExists and leave
// the stored record untouched.
func (u *VolunteerUsecase) Create(ctx context.Context, v *entity.Volunteer) error {
	return u.repo.Create(ctx, v)
}

// List returns all volunteer accounts.
func (u *VolunteerUsecase) List(ctx context.Context) ([]entity.Volunteer, error) {
	return u.repo.ListAll(ctx)
}

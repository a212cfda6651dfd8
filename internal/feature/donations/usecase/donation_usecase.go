package usecase

import (
	"context"

	"donation_backend/internal/feature/donations/domain/entity"
)

// DonationRepository abstracts the persistence layer for donation posts.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type DonationRepository interface {
	// Create inserts a donation post and fills in its generated id.
	Create(ctx context.Context, d *entity.Donation) error

	// ListAll returns every donation post in storage order.
	ListAll(ctx context.Context) ([]entity.Donation, error)

	// FindByID returns the donation with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Donation, error)

	// DeleteByID removes the donation with the given id and reports how
	// many rows were affected. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id uint) (int64, error)
}

// DonationUsecase provides business logic for donation operations.
type DonationUsecase struct {
	repo DonationRepository
}

// NewDonationUsecase creates a new DonationUsecase with the given repository.
func NewDonationUsecase(r DonationRepository) *DonationUsecase {
	return &DonationUsecase{repo: r}
}

// Create stores a new donation post and returns its generated id.
func (u *DonationUsecase) Create(ctx context.Context, d *entity.Donation) (uint, error) {
	if err := u.repo.Create(ctx, d); err != nil {
		return 0, err
	}
	return d.ID, nil
}

// List returns all donation posts, unfiltered and unpaginated.
func (u *DonationUsecase) List(ctx context.Context) ([]entity.Donation, error) {
	return u.repo.ListAll(ctx)
}

// Get returns a single donation post by id.
func (u *DonationUsecase) Get(ctx context.Context, id uint) (*entity.Donation, error) {
	return u.repo.FindByID(ctx, id)
}

// Delete removes a donation post by id. It is idempotent at the interface
// level: a missing id yields deleted == 0, not an error.
func (u *DonationUsecase) Delete(ctx context.Context, id uint) (int64, error) {
	return u.repo.DeleteByID(ctx, id)
}

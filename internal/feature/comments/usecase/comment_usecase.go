// Package usecase implements the business logic for the comments feature.
package usecase

import (
	"context"
	"time"

	"donation_backend/internal/feature/comments/domain/entity"
)

// dateLayout is the human-readable creation date stamped on each comment,
// e.g. "August 28, 2026".
const dateLayout = "January 2, 2006"

// CommentRepository abstracts the persistence layer for the comment log.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type CommentRepository interface {
	// Create appends a comment to the log and fills in its generated id.
	Create(ctx context.Context, c *entity.Comment) error

	// ListAll returns every comment in storage order.
	ListAll(ctx context.Context) ([]entity.Comment, error)
}

// CommentUsecase provides business logic for the append-only comment log.
type CommentUsecase struct {
	repo CommentRepository
}

// NewCommentUsecase creates a new CommentUsecase with the given repository.
func NewCommentUsecase(r CommentRepository) *CommentUsecase {
	return &CommentUsecase{repo: r}
}

// Post appends a comment, stamping the wall-clock creation date.
func (u *CommentUsecase) Post(ctx context.Context, c *entity.Comment) error {
	c.Time = time.Now().Format(dateLayout)
	return u.repo.Create(ctx, c)
}

// List returns all comments. The log is append-only; there is no update
// or delete.
func (u *CommentUsecase) List(ctx context.Context) ([]entity.Comment, error) {
	return u.repo.ListAll(ctx)
}

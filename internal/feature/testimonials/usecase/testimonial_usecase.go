// Package usecase はtestimonialsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"donation_backend/internal/feature/testimonials/domain/entity"
	"donation_backend/internal/shared/aggregate"
)

// TestimonialRepository は感想文集約の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type TestimonialRepository interface {
	// Upsert は初回の投稿で集約を作成し、2回目以降は金額と本文を
	// 最新の投稿で置き換えます。
	Upsert(ctx context.Context, fresh *entity.Testimonial) (aggregate.Outcome, error)

	// ListAll はすべての感想文を返します。
	ListAll(ctx context.Context) ([]entity.Testimonial, error)
}

// TestimonialUsecase は感想文集約のビジネスロジックを提供します。
type TestimonialUsecase struct {
	repo TestimonialRepository
}

// NewTestimonialUsecase は新しいTestimonialUsecaseを作成します。
func NewTestimonialUsecase(r TestimonialRepository) *TestimonialUsecase {
	return &TestimonialUsecase{repo: r}
}

// Post は感想文を集約に適用します。同じメールアドレスからの再投稿は
// 蓄積ではなく置き換えです（金額と本文の両方を最新の値にします）。
func (u *TestimonialUsecase) Post(ctx context.Context, t *entity.Testimonial) (aggregate.Outcome, error) {
	return u.repo.Upsert(ctx, t)
}

// List はすべての感想文を返します。
func (u *TestimonialUsecase) List(ctx context.Context) ([]entity.Testimonial, error) {
	return u.repo.ListAll(ctx)
}

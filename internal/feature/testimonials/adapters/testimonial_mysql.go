// Package adapters はtestimonialsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"donation_backend/internal/feature/testimonials/domain/entity"
	"donation_backend/internal/feature/testimonials/usecase"
	"donation_backend/internal/shared/aggregate"
)

// testimonialMySQL はTestimonialRepositoryインターフェースのMySQL実装です。
type testimonialMySQL struct {
	db *gorm.DB
}

var _ usecase.TestimonialRepository = (*testimonialMySQL)(nil)

// NewTestimonialRepository は指定されたDB接続でtestimonialMySQLリポジトリの新しいインスタンスを生成します。
func NewTestimonialRepository(db *gorm.DB) *testimonialMySQL {
	return &testimonialMySQL{db: db}
}

// Upsert は感想文をメールアドレス単位の集約に適用します。
// マージは置き換えです: 金額と本文を1回のUPDATEで両方更新します。
// 2つの更新指定に分けると片方しか適用されないため、必ず1ステートメント
// にまとめます。
func (r *testimonialMySQL) Upsert(ctx context.Context, fresh *entity.Testimonial) (aggregate.Outcome, error) {
	return aggregate.Upsert(ctx, r.db, "email", fresh.Email, fresh,
		func(tx *gorm.DB, existing *entity.Testimonial) error {
			return tx.Model(existing).Updates(map[string]any{
				"amount":      fresh.Amount,
				"testimonial": fresh.Testimonial,
			}).Error
		})
}

// ListAll はID昇順ですべての感想文を返します。
func (r *testimonialMySQL) ListAll(ctx context.Context) ([]entity.Testimonial, error) {
	var testimonials []entity.Testimonial
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

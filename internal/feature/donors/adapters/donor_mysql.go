// Package adapters はdonorsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"donation_backend/internal/feature/donors/domain/entity"
	"donation_backend/internal/feature/donors/usecase"
	"donation_backend/internal/shared/aggregate"
)

// donorMySQL はDonorRepositoryインターフェースのMySQL実装です。
type donorMySQL struct {
	db *gorm.DB
}

var _ usecase.DonorRepository = (*donorMySQL)(nil)

// NewDonorRepository は指定されたDB接続でdonorMySQLリポジトリの新しいインスタンスを生成します。
func NewDonorRepository(db *gorm.DB) *donorMySQL {
	return &donorMySQL{db: db}
}

// Upsert は寄付をドナー集約に適用します。
// 集約が存在しない場合は最初の寄付投稿を含めて新規作成します。
// 存在する場合のマージは、合計額をSQL式（amount + ?）で加算し、
// 投稿を子行として追記します。加算はステートメント単位でアトミック
// なため、並行するマージで更新が失われることはありません。
func (r *donorMySQL) Upsert(ctx context.Context, fresh *entity.Donor, post string) (aggregate.Outcome, error) {
	inc := fresh.Amount
	fresh.DonationPosts = []entity.DonationPost{{Post: post}}

	return aggregate.Upsert(ctx, r.db, "email", fresh.Email, fresh,
		func(tx *gorm.DB, existing *entity.Donor) error {
			if err := tx.Model(existing).
				Update("amount", gorm.Expr("amount + ?", inc)).Error; err != nil {
				return err
			}
			return tx.Create(&entity.DonationPost{DonorID: existing.ID, Post: post}).Error
		})
}

// ListAll は投稿リスト込みですべてのドナー集約を返します。
// 投稿リストは到着順（ID昇順）です。
func (r *donorMySQL) ListAll(ctx context.Context) ([]entity.Donor, error) {
	var donors []entity.Donor
	if err := r.db.WithContext(ctx).
		Preload("DonationPosts", func(db *gorm.DB) *gorm.DB {
			return db.Order("donation_posts.id ASC")
		}).
		Order("id ASC").
		Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}

// FindByEmail はメールアドレスでドナー集約を取得します。
// 存在しない場合、usecase.ErrNotFoundを返します。
func (r *donorMySQL) FindByEmail(ctx context.Context, email string) (*entity.Donor, error) {
	var d entity.Donor
	if err := r.db.WithContext(ctx).
		Preload("DonationPosts", func(db *gorm.DB) *gorm.DB {
			return db.Order("donation_posts.id ASC")
		}).
		Where("email = ?", email).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

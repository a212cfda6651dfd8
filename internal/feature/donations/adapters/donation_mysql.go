// Package adapters はdonationsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"donation_backend/internal/feature/donations/domain/entity"
	"donation_backend/internal/feature/donations/usecase"
)

// donationMySQL はDonationRepositoryインターフェースのMySQL実装です。
type donationMySQL struct {
	db *gorm.DB
}

var _ usecase.DonationRepository = (*donationMySQL)(nil)

// NewDonationRepository は指定されたDB接続でdonationMySQLリポジトリの新しいインスタンスを生成します。
func NewDonationRepository(db *gorm.DB) *donationMySQL {
	return &donationMySQL{db: db}
}

// Create は寄付投稿をデータベースに追加し、生成されたIDをセットします。
func (r *donationMySQL) Create(ctx context.Context, d *entity.Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// ListAll は保存順にすべての寄付投稿を返します。
func (r *donationMySQL) ListAll(ctx context.Context) ([]entity.Donation, error) {
	var donations []entity.Donation
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// FindByID はIDで寄付投稿を取得します。
// 存在しない場合、usecase.ErrNotFoundを返します。
func (r *donationMySQL) FindByID(ctx context.Context, id uint) (*entity.Donation, error) {
	var d entity.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// DeleteByID はIDで寄付投稿を削除し、影響行数を返します。
// 存在しないIDの削除はエラーではなく影響行数0として報告します。
func (r *donationMySQL) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Donation{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

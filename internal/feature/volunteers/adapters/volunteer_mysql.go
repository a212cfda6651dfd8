// Package adapters はvolunteersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"donation_backend/internal/feature/volunteers/domain/entity"
	"donation_backend/internal/feature/volunteers/usecase"
	platformdb "donation_backend/internal/platform/db"
)

// volunteerMySQL はVolunteerRepositoryインターフェースのMySQL実装です。
type volunteerMySQL struct {
	db *gorm.DB
}

var _ usecase.VolunteerRepository = (*volunteerMySQL)(nil)

// NewVolunteerRepository は指定されたDB接続でvolunteerMySQLリポジトリの新しいインスタンスを生成します。
func NewVolunteerRepository(db *gorm.DB) *volunteerMySQL {
	return &volunteerMySQL{db: db}
}

// Create はボランティアアカウントをデータベースに追加します。
// 同じメールアドレスのアカウントが既に存在する場合、
// usecase.ErrEmailAlreadyExistsを返します。
func (r *volunteerMySQL) Create(ctx context.Context, v *entity.Volunteer) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		if platformdb.IsDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// ListAll はID昇順ですべてのボランティアアカウントを返します。
func (r *volunteerMySQL) ListAll(ctx context.Context) ([]entity.Volunteer, error) {
	var volunteers []entity.Volunteer
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&volunteers).Error; err != nil {
		return nil, err
	}
	return volunteers, nil
}

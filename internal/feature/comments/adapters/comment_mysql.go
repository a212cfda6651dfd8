// Package adapters はcommentsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"donation_backend/internal/feature/comments/domain/entity"
	"donation_backend/internal/feature/comments/usecase"
)

// commentMySQL はCommentRepositoryインターフェースのMySQL実装です。
type commentMySQL struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentMySQL)(nil)

// NewCommentRepository は指定されたDB接続でcommentMySQLリポジトリの新しいインスタンスを生成します。
func NewCommentRepository(db *gorm.DB) *commentMySQL {
	return &commentMySQL{db: db}
}

// Create はコメントをログに追記し、生成されたIDをセットします。
func (r *commentMySQL) Create(ctx context.Context, c *entity.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// ListAll はID昇順ですべてのコメントを返します。
func (r *commentMySQL) ListAll(ctx context.Context) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

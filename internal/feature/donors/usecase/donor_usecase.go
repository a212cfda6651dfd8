// Package usecase はdonorsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"donation_backend/internal/feature/donors/domain/entity"
	"donation_backend/internal/shared/aggregate"
)

// Contribution は1回の寄付の入力です。Postは寄付対象の投稿への参照です。
type Contribution struct {
	Email  string
	Name   string
	Image  string
	Amount int64
	Post   string
}

// DonorRepository はドナー集約の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type DonorRepository interface {
	// Upsert は初回の寄付で集約を作成し、2回目以降は合計額を加算して
	// 投稿リストに追記します。
	Upsert(ctx context.Context, fresh *entity.Donor, post string) (aggregate.Outcome, error)

	// ListAll はすべてのドナー集約を投稿リスト込みで返します。
	ListAll(ctx context.Context) ([]entity.Donor, error)

	// FindByEmail はメールアドレスでドナー集約を取得します。
	// 存在しない場合、ErrNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.Donor, error)
}

// DonorUsecase はドナー集約のビジネスロジックを提供します。
type DonorUsecase struct {
	repo DonorRepository
}

// NewDonorUsecase は新しいDonorUsecaseを作成します。
func NewDonorUsecase(r DonorRepository) *DonorUsecase {
	return &DonorUsecase{repo: r}
}

// Contribute は寄付を集約に適用します。
// 初回の寄付は新しい集約を作成し（Created）、以降の寄付は合計額に
// 加算し投稿リストの末尾に追記します（Updated）。
func (u *DonorUsecase) Contribute(ctx context.Context, in Contribution) (aggregate.Outcome, error) {
	fresh := &entity.Donor{
		Email:  in.Email,
		Name:   in.Name,
		Image:  in.Image,
		Amount: in.Amount,
	}
	return u.repo.Upsert(ctx, fresh, in.Post)
}

// List はすべてのドナー集約を返します。
func (u *DonorUsecase) List(ctx context.Context) ([]entity.Donor, error) {
	return u.repo.ListAll(ctx)
}

// Get はメールアドレスでドナー集約を1件取得します。
func (u *DonorUsecase) Get(ctx context.Context, email string) (*entity.Donor, error) {
	return u.repo.FindByEmail(ctx, email)
}

// Package handler はdonorsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"donation_backend/internal/api"
	"donation_backend/internal/feature/donors/domain/entity"
	"donation_backend/internal/feature/donors/transport/http/dto"
	"donation_backend/internal/feature/donors/usecase"
	"donation_backend/internal/shared/aggregate"
)

// DonorUsecase はドナー集約に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DonorUsecase interface {
	Contribute(ctx context.Context, in usecase.Contribution) (aggregate.Outcome, error)
	List(ctx context.Context) ([]entity.Donor, error)
	Get(ctx context.Context, email string) (*entity.Donor, error)
}

// DonorHandler はドナー集約に関するHTTPリクエストを処理します。
type DonorHandler struct {
	uc DonorUsecase
}

// NewDonorHandler は新しい DonorHandler を作成します。
func NewDonorHandler(uc DonorUsecase) *DonorHandler {
	return &DonorHandler{uc: uc}
}

// Contribute は寄付を受け付けるAPIです。
// 初回の寄付で集約が作成され、以降は合計額への加算と投稿リストへの
// 追記になります。成功メッセージは作成か更新かで変わります。
func (h *DonorHandler) Contribute(c *gin.Context) {
	var req dto.DonorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("donor validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("invalid request"))
		return
	}
	outcome, err := h.uc.Contribute(c.Request.Context(), usecase.Contribution{
		Email:  req.Email,
		Name:   req.Name,
		Image:  req.Image,
		Amount: req.Amount,
		Post:   req.DonationPost,
	})
	if err != nil {
		slog.Error("donor contribute failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.Error("failed to record donation"))
		return
	}

	message := "You provided a donation successfully!"
	if outcome == aggregate.Updated {
		message = "Donation updated successfully!"
	}
	c.JSON(http.StatusOK, api.ResultResponse{
		Success: true,
		Message: message,
		Result:  gin.H{"outcome": outcome},
	})
}

// List はすべてのドナーを取得するAPIです。
func (h *DonorHandler) List(c *gin.Context) {
	data, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("donor list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("failed to retrieve donors"))
		return
	}
	c.JSON(http.StatusOK, api.DataResponse{
		Success: true,
		Message: "successfully retrieve donors!",
		Data:    data,
	})
}

// Get はメールアドレスでドナーを1件取得するAPIです。
// 存在しない場合は404を返します。
func (h *DonorHandler) Get(c *gin.Context) {
	email := c.Param("email")
	data, err := h.uc.Get(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, api.Error("donor not found"))
			return
		}
		slog.Error("donor get failed", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, api.Error("failed to retrieve donor"))
		return
	}
	c.JSON(http.StatusOK, api.DataResponse{
		Success: true,
		Message: "successfully retrieve donor!",
		Data:    data,
	})
}

// Package handler はdonationsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"donation_backend/internal/api"
	"donation_backend/internal/feature/donations/domain/entity"
	"donation_backend/internal/feature/donations/transport/http/dto"
	"donation_backend/internal/feature/donations/usecase"
)

// DonationUsecase は寄付投稿に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DonationUsecase interface {
	Create(ctx context.Context, d *entity.Donation) (uint, error)
	List(ctx context.Context) ([]entity.Donation, error)
	Get(ctx context.Context, id uint) (*entity.Donation, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// DonationHandler は寄付投稿に関するHTTPリクエストを処理します。
type DonationHandler struct {
	uc DonationUsecase
}

// NewDonationHandler は新しい DonationHandler を作成します。
func NewDonationHandler(uc DonationUsecase) *DonationHandler {
	return &DonationHandler{uc: uc}
}

// Create は寄付投稿を作成するAPIです。
// リクエストをバインドし、生成されたIDをresultとして返します。
func (h *DonationHandler) Create(c *gin.Context) {
	var req dto.DonationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("donation validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("invalid request"))
		return
	}
	d := &entity.Donation{
		Image:       req.Image,
		Title:       req.Title,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	id, err := h.uc.Create(c.Request.Context(), d)
	if err != nil {
		slog.Error("donation create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("failed to create donation"))
		return
	}
	c.JSON(http.StatusOK, api.ResultResponse{
		Success: true,
		Message: "Successfully donation create!",
		Result:  gin.H{"insertedId": id},
	})
}

// List はすべての寄付投稿を取得するAPIです。
func (h *DonationHandler) List(c *gin.Context) {
	data, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("donation list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("failed to retrieve donations"))
		return
	}
	c.JSON(http.StatusOK, api.DataResponse{
		Success: true,
		Message: "successfully retrieve donation!",
		Data:    data,
	})
}

// Get はIDで寄付投稿を1件取得するAPIです。
// 存在しない場合は404を返します（暗黙のnullレスポンスは行いません）。
func (h *DonationHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("invalid donation id"))
		return
	}
	data, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, api.Error("donation not found"))
			return
		}
		slog.Error("donation get failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.Error("failed to retrieve donation"))
		return
	}
	c.JSON(http.StatusOK, api.DataResponse{
		Success: true,
		Message: "successfully retrieve donation!",
		Data:    data,
	})
}

// Delete はIDで寄付投稿を削除するAPIです。
// 冪等です: 存在しないIDでも成功（deletedCount 0）を返します。
func (h *DonationHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("invalid donation id"))
		return
	}
	deleted, err := h.uc.Delete(c.Request.Context(), id)
	if err != nil {
		slog.Error("donation delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.Error("failed to delete donation"))
		return
	}
	c.JSON(http.StatusOK, api.ResultResponse{
		Success: true,
		Message: "successfully delete donation!",
		Result:  gin.H{"deletedCount": deleted},
	})
}

// parseID はパスパラメータのIDをuintに変換します。
func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

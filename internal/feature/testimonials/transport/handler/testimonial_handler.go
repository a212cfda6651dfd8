// Package handler はtestimonialsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"donation_backend/internal/api"
	"donation_backend/internal/feature/testimonials/domain/entity"
	"donation_backend/internal/feature/testimonials/transport/http/dto"
	"donation_backend/internal/shared/aggregate"
)

// TestimonialUsecase は感想文に関するユースケースのインターフェースです。
type TestimonialUsecase interface {
	Post(ctx context.Context, t *entity.Testimonial) (aggregate.Outcome, error)
	List(ctx context.Context) ([]entity.Testimonial, error)
}

// TestimonialHandler は感想文に関するHTTPリクエストを処理します。
type TestimonialHandler struct {
	uc TestimonialUsecase
}

// NewTestimonialHandler は新しい TestimonialHandler を作成します。
func NewTestimonialHandler(uc TestimonialUsecase) *TestimonialHandler {
	return &TestimonialHandler{uc: uc}
}

// Post は感想文を投稿するAPIです。
// 同じメールアドレスからの再投稿は金額と本文の置き換えになります。
func (h *TestimonialHandler) Post(c *gin.Context) {
	var req dto.TestimonialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("testimonial validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("invalid request"))
		return
	}
	t := &entity.Testimonial{
		Email:       req.Email,
		Name:        req.Name,
		Image:       req.Image,
		Amount:      req.Amount,
		Testimonial: req.Testimonial,
	}
	outcome, err := h.uc.Post(c.Request.Context(), t)
	if err != nil {
		slog.Error("testimonial post failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.Error("failed to post testimonial"))
		return
	}

	message := "You posted testimonial successfully!"
	if outcome == aggregate.Updated {
		message = "Your testimonial Updated successfully!"
	}
	c.JSON(http.StatusOK, api.ResultResponse{
		Success: true,
		Message: message,
		Result:  gin.H{"outcome": outcome},
	})
}

// List はすべての感想文を取得するAPIです。
func (h *TestimonialHandler) List(c *gin.Context) {
	data, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("testimonial list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("failed to retrieve testimonials"))
		return
	}
	c.JSON(http.StatusOK, api.DataResponse{
		Success: true,
		Message: "successfully retrieve Testimonials!",
		Data:    data,
	})
}

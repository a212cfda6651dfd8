// Package handler はvolunteersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"donation_backend/internal/api"
	"donation_backend/internal/feature/volunteers/domain/entity"
	"donation_backend/internal/feature/volunteers/transport/http/dto"
	"donation_backend/internal/feature/volunteers/usecase"
)

// VolunteerUsecase はボランティアに関するユースケースのインターフェースです。
type VolunteerUsecase interface {
	Create(ctx context.Context, v *entity.Volunteer) error
	List(ctx context.Context) ([]entity.Volunteer, error)
}

// VolunteerHandler はボランティアに関するHTTPリクエストを処理します。
type VolunteerHandler struct {
	uc VolunteerUsecase
}

// NewVolunteerHandler は新しい VolunteerHandler を作成します。
func NewVolunteerHandler(uc VolunteerUsecase) *VolunteerHandler {
	return &VolunteerHandler{uc: uc}
}

// Create はボランティアアカウントを作成するAPIです。
// メールアドレスは1アカウント限り。重複時は409を返します。
func (h *VolunteerHandler) Create(c *gin.Context) {
	var req dto.VolunteerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("volunteer validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("invalid request"))
		return
	}
	v := &entity.Volunteer{
		Image:       req.Image,
		Name:        req.Name,
		Email:       req.Email,
		Passion:     req.Passion,
		PhoneNumber: req.PhoneNumber,
		Location:    req.Location,
	}
	if err := h.uc.Create(c.Request.Context(), v); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, api.Error("You Have already created account for Volunteer"))
			return
		}
		slog.Error("volunteer create failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.Error("failed to create volunteer account"))
		return
	}
	c.JSON(http.StatusOK, api.ResultResponse{
		Success: true,
		Message: "Volunteer Account Created Successfully!",
		Result:  gin.H{"insertedId": v.ID},
	})
}

// List はすべてのボランティアを取得するAPIです。
func (h *VolunteerHandler) List(c *gin.Context) {
	data, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("volunteer list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("failed to retrieve volunteers"))
		return
	}
	c.JSON(http.StatusOK, api.DataResponse{
		Success: true,
		Message: "successfully retrieve volunteers!",
		Data:    data,
	})
}

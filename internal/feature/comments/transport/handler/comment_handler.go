// Package handler はcommentsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"donation_backend/internal/api"
	"donation_backend/internal/feature/comments/domain/entity"
	"donation_backend/internal/feature/comments/transport/http/dto"
)

// CommentUsecase はコメントに関するユースケースのインターフェースです。
type CommentUsecase interface {
	Post(ctx context.Context, c *entity.Comment) error
	List(ctx context.Context) ([]entity.Comment, error)
}

// CommentHandler はコメントに関するHTTPリクエストを処理します。
type CommentHandler struct {
	uc CommentUsecase
}

// NewCommentHandler は新しい CommentHandler を作成します。
func NewCommentHandler(uc CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Post はコメントを投稿するAPIです。
// 作成日（"January 2, 2006"形式）はサーバー側で付与されます。
func (h *CommentHandler) Post(c *gin.Context) {
	var req dto.CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("comment validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("invalid request"))
		return
	}
	comment := &entity.Comment{
		Image:   req.Image,
		Name:    req.Name,
		Email:   req.Email,
		Comment: req.Comment,
	}
	if err := h.uc.Post(c.Request.Context(), comment); err != nil {
		slog.Error("comment post failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("failed to post comment"))
		return
	}
	c.JSON(http.StatusOK, api.ResultResponse{
		Success: true,
		Message: "Comment Posted Successfully!",
		Result:  gin.H{"insertedId": comment.ID, "time": comment.Time},
	})
}

// List はすべてのコメントを取得するAPIです。
func (h *CommentHandler) List(c *gin.Context) {
	data, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("comment list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("failed to retrieve comments"))
		return
	}
	c.JSON(http.StatusOK, api.DataResponse{
		Success: true,
		Message: "successfully retrieve comments!",
		Data:    data,
	})
}

// Package dto defines data transfer objects for the comments HTTP API.
package dto

// CommentReq represents the request body for posting a comment.
type CommentReq struct {
	Image   string `json:"image"`
	Name    string `json:"name"`
	Email   string `json:"email" binding:"required,email"`
	Comment string `json:"comment" binding:"required"`
}

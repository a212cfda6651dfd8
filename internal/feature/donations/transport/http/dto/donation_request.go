// Package dto defines data transfer objects for the donations HTTP API.
package dto

// DonationReq represents the request body for creating a donation post.
type DonationReq struct {
	Image       string `json:"image"`
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description"`
}

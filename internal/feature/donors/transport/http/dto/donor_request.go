// Package dto defines data transfer objects for the donors HTTP API.
package dto

// DonorReq represents the request body for a contribution.
// DonationPost references the donation post this contribution targets.
type DonorReq struct {
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Amount       int64  `json:"amount" binding:"required"`
	DonationPost string `json:"donationPost"`
}

// Package dto defines data transfer objects for the testimonials HTTP API.
package dto

// TestimonialReq represents the request body for posting a testimonial.
type TestimonialReq struct {
	Email       string `json:"email" binding:"required,email"`
	Image       string `json:"image"`
	Name        string `json:"name"`
	Amount      int64  `json:"amount"`
	Testimonial string `json:"testimonial" binding:"required"`
}

// Package dto defines data transfer objects for the volunteers HTTP API.
package dto

// VolunteerReq represents the request body for creating a volunteer account.
type VolunteerReq struct {
	Image       string `json:"image"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Passion     string `json:"passion"`
	PhoneNumber string `json:"phoneNumber"`
	Location    string `json:"location"`
}

// Package entity defines the domain models for the volunteers feature.
package entity

import "time"

// Volunteer represents a volunteer account. One account per email; a
// second create for the same email is rejected.
type Volunteer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Image       string `gorm:"size:512" json:"image"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Email       string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Passion     string `gorm:"size:255" json:"passion"`
	PhoneNumber string `gorm:"size:50" json:"phoneNumber"`
	Location    string `gorm:"size:255" json:"location"`

	CreatedAt time.Time `json:"-"`
}

// Package entity defines the domain models for the donations feature.
package entity

import "time"

// Donation represents a donation post on the platform.
// Posts are created and deleted but never updated.
type Donation struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Image       string `gorm:"size:512" json:"image"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Category    string `gorm:"size:100" json:"category"`
	Amount      int64  `gorm:"not null" json:"amount"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"-"`
}

// Package entity defines the domain models for the testimonials feature.
package entity

import "time"

// Testimonial is the per-email testimonial aggregate. A repeat post from
// the same email replaces the stored amount and text with the latest
// submission.
type Testimonial struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name        string `gorm:"size:255" json:"name"`
	Image       string `gorm:"size:512" json:"image"`
	Amount      int64  `gorm:"not null" json:"amount"`
	Testimonial string `gorm:"type:text" json:"testimonial"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Package entity defines the domain models for the donors feature.
package entity

import "time"

// Donor is the aggregate record for a contributor, keyed by email.
// The first contribution creates the row; every later contribution adds
// to Amount and appends a DonationPost child row.
type Donor struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Email  string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name   string `gorm:"size:255" json:"name"`
	Image  string `gorm:"size:512" json:"image"`
	Amount int64  `gorm:"not null" json:"amount"`

	// DonationPosts is the append-only list of donation-post references,
	// in arrival order. Duplicates are allowed.
	DonationPosts []DonationPost `gorm:"foreignKey:DonorID" json:"donationPosts"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DonationPost is one entry in a donor's contribution list.
// Arrival order is the auto-increment id order.
type DonationPost struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	DonorID uint   `gorm:"index;not null" json:"-"`
	Post    string `gorm:"size:512;not null" json:"post"`

	CreatedAt time.Time `json:"-"`
}

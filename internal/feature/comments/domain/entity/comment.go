// Package entity defines the domain models for the comments feature.
package entity

import "time"

// Comment is one entry in the append-only comment log.
// Time holds the human-readable creation date ("January 2, 2006")
// stamped at insert; the platform's frontend renders it verbatim.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Image   string `gorm:"size:512" json:"image"`
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Comment string `gorm:"type:text;not null" json:"comment"`
	Time    string `gorm:"size:50;not null" json:"time"`

	CreatedAt time.Time `json:"-"`
}

// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// RoleUser is the only role ever stored at registration time.
// The registration endpoint accepts a role field for wire compatibility
// but callers cannot self-elevate.
const RoleUser = "user"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Role is the user's authorization role. Always RoleUser on creation.
	Role string `gorm:"size:50;not null;default:user"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

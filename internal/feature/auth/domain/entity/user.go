// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// It is created on registration and never mutated afterwards; Register and
// Login are the only code paths that touch user rows.
type User struct {
	// ID is the opaque unique identifier (UUID v4), assigned on registration.
	ID string `gorm:"primaryKey;size:36"`

	// Email is the login identifier. Unique, matched case-sensitively.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the password.
	// Plaintext is never stored.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time
}

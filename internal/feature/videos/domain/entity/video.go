// Package entity defines the domain entities for the videos feature.
package entity

import "time"

// Visibility of a video.
const (
	// Public videos are viewable by anyone, authenticated or not.
	Public = false
	// Private videos are viewable only by their owner.
	Private = true
)

// Video represents an uploaded video and its metadata.
// The content bytes themselves live in the content store; Filename is the
// opaque handle into it. Views is mutated only through the engagement ledger
// and only increases.
type Video struct {
	ID          string    // Opaque unique identifier (UUID v4)
	Title       string    // Display title
	Description string    // Free-form description
	OwnerID     string    // Uploading user's ID
	Filename    string    // Content store handle for the video bytes
	Private     bool      // Privacy flag: owner-only when true
	Views       int64     // Monotonic view counter
	CreatedAt   time.Time // Upload timestamp
}

package entity

import "time"

// Comment is an append-only remark on a video: created once, never mutated
// or deleted. Comments for a video are totally ordered by creation time,
// with insertion order breaking ties.
type Comment struct {
	ID        string    // Opaque unique identifier (UUID v4)
	VideoID   string    // Commented video
	UserID    string    // Author
	Text      string    // Non-empty comment body
	CreatedAt time.Time // Server-assigned creation timestamp
}

// Package usecase implements the business logic for the engagement feature.
package usecase

import "errors"

// ErrEmptyText is returned when a comment's text is empty or whitespace-only
// after trimming.
var ErrEmptyText = errors.New("comment text is required")

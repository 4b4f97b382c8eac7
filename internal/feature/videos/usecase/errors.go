// Package usecase implements the business logic for the videos feature.
package usecase

import "errors"

var (
	// ErrVideoNotFound is returned when no video exists for the given ID.
	ErrVideoNotFound = errors.New("video not found")

	// ErrUnauthenticated is returned when a private video is requested
	// without a resolved caller identity.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when an authenticated caller requests a
	// private video they do not own.
	ErrForbidden = errors.New("access forbidden")

	// ErrNoFile is returned when an upload carries no file.
	ErrNoFile = errors.New("no file selected")
)

// Package entity defines the domain entities for the insights feature.
package entity

// ThumbnailLabel is one label detected on an uploaded thumbnail image.
type ThumbnailLabel struct {
	// Name is the label description (e.g. "Skateboard").
	Name string

	// Confidence is the detection score in [0, 1].
	Confidence float32
}

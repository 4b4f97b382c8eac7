// Package entity defines the domain entities for the engagement feature.
package entity

// Like is a set-membership record, not a counter: its presence means "this
// user currently likes this video". The (VideoID, UserID) pair is the
// identity; there is no independent lifecycle beyond the pair's existence.
type Like struct {
	VideoID string
	UserID  string
}

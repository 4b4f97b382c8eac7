package usecase

import "vidshare_backend/internal/feature/videos/domain/entity"

// CanView decides whether the caller may view the given video.
// callerID is empty when no identity resolved.
//
// Public videos are always viewable. Private videos return
// ErrUnauthenticated for anonymous callers and ErrForbidden for any
// authenticated caller other than the owner.
//
// The decision is computed fresh from the video row on every call and is
// never cached: privacy and ownership are mutable in principle and a stale
// allow must never be served. Callers must short-circuit on a non-nil error
// before reading likes, comments or content bytes.
func CanView(video *entity.Video, callerID string) error {
	if !video.Private {
		return nil
	}
	if callerID == "" {
		return ErrUnauthenticated
	}
	if callerID != video.OwnerID {
		return ErrForbidden
	}
	return nil
}

package usecase

import (
	"context"
	"strings"

	"vidshare_backend/internal/feature/engagement/domain/entity"

	"github.com/google/uuid"
)

// LikeRepository abstracts the like-membership relation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type LikeRepository interface {
	// Toggle atomically flips the (videoID, userID) membership and returns
	// the new state plus the post-toggle total for the video. Two concurrent
	// toggles on the same pair must not create duplicate records or lose a
	// transition.
	Toggle(ctx context.Context, videoID, userID string) (liked bool, total int64, err error)

	// CountByVideo returns the current like total for a video.
	CountByVideo(ctx context.Context, videoID string) (int64, error)
}

// CommentRepository abstracts the append-only comment log.
type CommentRepository interface {
	// Create appends a comment. The comment is visible to subsequent
	// listings as soon as Create returns.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByVideo returns the comments for a video, newest first, ties
	// broken by insertion order.
	ListByVideo(ctx context.Context, videoID string) ([]entity.Comment, error)
}

// ViewCounter abstracts the per-video view counter. It is implemented by the
// videos adapter; the engagement ledger owns when a view is counted, the
// videos row owns where.
type ViewCounter interface {
	// IncrementViews adds exactly one view and returns the updated count.
	// Concurrent increments on the same video must not be lost.
	IncrementViews(ctx context.Context, videoID string) (int64, error)
}

// engagementUsecase owns view counts, the like relation and the comment log.
// Callers are expected to have passed access control before invoking any
// method here; the ledger itself never re-checks visibility.
type engagementUsecase struct {
	likes    LikeRepository
	comments CommentRepository
	views    ViewCounter
}

// NewEngagementUsecase creates a new instance of engagementUsecase.
func NewEngagementUsecase(likes LikeRepository, comments CommentRepository, views ViewCounter) *engagementUsecase {
	return &engagementUsecase{likes: likes, comments: comments, views: views}
}

// RecordView increments the video's view counter by exactly one and returns
// the updated value.
func (u *engagementUsecase) RecordView(ctx context.Context, videoID string) (int64, error) {
	return u.views.IncrementViews(ctx, videoID)
}

// ToggleLike flips the like state for the (videoID, userID) pair and returns
// the new state and the post-toggle total.
func (u *engagementUsecase) ToggleLike(ctx context.Context, videoID, userID string) (bool, int64, error) {
	return u.likes.Toggle(ctx, videoID, userID)
}

// CountLikes returns the current like total for a video.
func (u *engagementUsecase) CountLikes(ctx context.Context, videoID string) (int64, error) {
	return u.likes.CountByVideo(ctx, videoID)
}

// AddComment appends a comment with a server-assigned timestamp.
// Returns ErrEmptyText when the text trims to nothing; the stored text keeps
// the caller's original whitespace.
func (u *engagementUsecase) AddComment(ctx context.Context, videoID, userID, text string) (*entity.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	comment := &entity.Comment{
		ID:      uuid.NewString(),
		VideoID: videoID,
		UserID:  userID,
		Text:    text,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the comments for a video, newest first. The result is
// fully materialized and reflects the state at call time; the call is
// restartable.
func (u *engagementUsecase) ListComments(ctx context.Context, videoID string) ([]entity.Comment, error) {
	return u.comments.ListByVideo(ctx, videoID)
}

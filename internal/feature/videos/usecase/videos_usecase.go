package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"vidshare_backend/internal/feature/videos/domain/entity"

	"github.com/google/uuid"
)

// DefaultTitle is used when an upload carries no title.
const DefaultTitle = "Untitled"

// VideoRepository abstracts the persistence layer for video metadata.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type VideoRepository interface {
	// Create persists a new video row.
	Create(ctx context.Context, video *entity.Video) error

	// FindByID retrieves a video by ID.
	// Returns ErrVideoNotFound when the ID is unknown.
	FindByID(ctx context.Context, id string) (*entity.Video, error)

	// ListPublic returns all public videos, newest first.
	ListPublic(ctx context.Context) ([]entity.Video, error)
}

// ContentStore abstracts the external store holding the raw video and
// thumbnail bytes. The usecase treats it as "save bytes, return a handle".
type ContentStore interface {
	// Save stores the content under the given handle, overwriting any
	// previous content with that handle.
	Save(ctx context.Context, name string, content io.Reader) error

	// Open returns a reader over the content for the given handle.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// videosUsecase implements upload, lookup and feed listing for videos.
type videosUsecase struct {
	videos VideoRepository
	store  ContentStore
}

// NewVideosUsecase creates a new instance of videosUsecase.
func NewVideosUsecase(videos VideoRepository, store ContentStore) *videosUsecase {
	return &videosUsecase{videos: videos, store: store}
}

// Upload stores the content bytes and persists the video metadata.
// The content handle is "<uuid>_<basename>" so handles never collide and the
// original filename stays legible. An empty title falls back to DefaultTitle.
func (u *videosUsecase) Upload(ctx context.Context, ownerID, title, description string, private bool, filename string, content io.Reader) (*entity.Video, error) {
	if filename == "" || content == nil {
		return nil, ErrNoFile
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	id := uuid.NewString()
	handle := fmt.Sprintf("%s_%s", id, filepath.Base(filename))

	if err := u.store.Save(ctx, handle, content); err != nil {
		return nil, fmt.Errorf("failed to store content: %w", err)
	}

	video := &entity.Video{
		ID:          id,
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		Filename:    handle,
		Private:     private,
	}
	if err := u.videos.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// View retrieves a video and authorizes the caller against its privacy flag.
// The access decision short-circuits before the caller can touch likes,
// comments or content bytes.
func (u *videosUsecase) View(ctx context.Context, id, callerID string) (*entity.Video, error) {
	video, err := u.videos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanView(video, callerID); err != nil {
		return nil, err
	}
	return video, nil
}

// ListPublic returns the public feed, newest first.
func (u *videosUsecase) ListPublic(ctx context.Context) ([]entity.Video, error) {
	return u.videos.ListPublic(ctx)
}

// OpenContent streams stored bytes for a content handle.
func (u *videosUsecase) OpenContent(ctx context.Context, name string) (io.ReadCloser, error) {
	return u.store.Open(ctx, name)
}

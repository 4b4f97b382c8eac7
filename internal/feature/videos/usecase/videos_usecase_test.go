package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"vidshare_backend/internal/feature/videos/domain/entity"
)

// mockVideoRepository is a mock implementation of the VideoRepository interface.
type mockVideoRepository struct {
	CreateFunc     func(video *entity.Video) error
	FindByIDFunc   func(id string) (*entity.Video, error)
	ListPublicFunc func() ([]entity.Video, error)
}

func (m *mockVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(video)
	}
	return nil
}

func (m *mockVideoRepository) FindByID(ctx context.Context, id string) (*entity.Video, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, ErrVideoNotFound
}

func (m *mockVideoRepository) ListPublic(ctx context.Context) ([]entity.Video, error) {
	if m.ListPublicFunc != nil {
		return m.ListPublicFunc()
	}
	return nil, nil
}

// mockContentStore is an in-memory mock of the ContentStore interface.
type mockContentStore struct {
	SaveFunc func(name string, content io.Reader) error
	OpenFunc func(name string) (io.ReadCloser, error)
}

func (m *mockContentStore) Save(ctx context.Context, name string, content io.Reader) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(name, content)
	}
	return nil
}

func (m *mockContentStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(name)
	}
	return io.NopCloser(bytes.NewReader(nil)), nil
}

func TestVideosUsecase_Upload(t *testing.T) {
	t.Run("successful upload persists content then metadata", func(t *testing.T) {
		var savedHandle string
		store := &mockContentStore{
			SaveFunc: func(name string, content io.Reader) error {
				savedHandle = name
				return nil
			},
		}
		var created *entity.Video
		repo := &mockVideoRepository{
			CreateFunc: func(video *entity.Video) error {
				created = video
				return nil
			},
		}

		uc := NewVideosUsecase(repo, store)
		video, err := uc.Upload(context.Background(), "owner-1", "My clip", "desc", true, "clip.mp4", strings.NewReader("content"))

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("metadata was not persisted")
		}
		if video.ID == "" {
			t.Error("video ID was not assigned")
		}
		if !strings.HasSuffix(savedHandle, "_clip.mp4") {
			t.Errorf("handle should keep the original basename, got %q", savedHandle)
		}
		if !strings.HasPrefix(savedHandle, video.ID) {
			t.Errorf("handle should be namespaced by the video ID, got %q", savedHandle)
		}
		if video.Filename != savedHandle {
			t.Error("metadata should reference the stored handle")
		}
		if !video.Private {
			t.Error("private flag was dropped")
		}
	})

	t.Run("empty title falls back to the default", func(t *testing.T) {
		uc := NewVideosUsecase(&mockVideoRepository{}, &mockContentStore{})

		video, err := uc.Upload(context.Background(), "owner-1", "   ", "", false, "clip.mp4", strings.NewReader("content"))

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if video.Title != DefaultTitle {
			t.Errorf("expected %q, got %q", DefaultTitle, video.Title)
		}
	})

	t.Run("path components are stripped from the filename", func(t *testing.T) {
		var savedHandle string
		store := &mockContentStore{
			SaveFunc: func(name string, content io.Reader) error {
				savedHandle = name
				return nil
			},
		}

		uc := NewVideosUsecase(&mockVideoRepository{}, store)
		_, err := uc.Upload(context.Background(), "owner-1", "t", "", false, "../../etc/passwd", strings.NewReader("content"))

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(savedHandle, "/") || strings.Contains(savedHandle, "..") {
			t.Errorf("handle must not contain path components, got %q", savedHandle)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		uc := NewVideosUsecase(&mockVideoRepository{}, &mockContentStore{})

		_, err := uc.Upload(context.Background(), "owner-1", "t", "", false, "", nil)

		if !errors.Is(err, ErrNoFile) {
			t.Errorf("expected ErrNoFile, got: %v", err)
		}
	})

	t.Run("content store failure aborts before metadata", func(t *testing.T) {
		storeErr := errors.New("disk full")
		store := &mockContentStore{
			SaveFunc: func(name string, content io.Reader) error {
				return storeErr
			},
		}
		repo := &mockVideoRepository{
			CreateFunc: func(video *entity.Video) error {
				t.Error("metadata must not be written when content storage fails")
				return nil
			},
		}

		uc := NewVideosUsecase(repo, store)
		_, err := uc.Upload(context.Background(), "owner-1", "t", "", false, "clip.mp4", strings.NewReader("content"))

		if !errors.Is(err, storeErr) {
			t.Errorf("expected storage error, got: %v", err)
		}
	})
}

func TestVideosUsecase_View(t *testing.T) {
	privateVideo := &entity.Video{ID: "v1", OwnerID: "owner", Private: entity.Private}

	t.Run("owner views own private video", func(t *testing.T) {
		repo := &mockVideoRepository{
			FindByIDFunc: func(id string) (*entity.Video, error) {
				return privateVideo, nil
			},
		}

		uc := NewVideosUsecase(repo, &mockContentStore{})
		video, err := uc.View(context.Background(), "v1", "owner")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if video.ID != "v1" {
			t.Errorf("unexpected video: %v", video.ID)
		}
	})

	t.Run("anonymous caller on private video", func(t *testing.T) {
		repo := &mockVideoRepository{
			FindByIDFunc: func(id string) (*entity.Video, error) {
				return privateVideo, nil
			},
		}

		uc := NewVideosUsecase(repo, &mockContentStore{})
		_, err := uc.View(context.Background(), "v1", "")

		if !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got: %v", err)
		}
	})

	t.Run("non-owner on private video", func(t *testing.T) {
		repo := &mockVideoRepository{
			FindByIDFunc: func(id string) (*entity.Video, error) {
				return privateVideo, nil
			},
		}

		uc := NewVideosUsecase(repo, &mockContentStore{})
		_, err := uc.View(context.Background(), "v1", "intruder")

		if !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got: %v", err)
		}
	})

	t.Run("unknown video", func(t *testing.T) {
		uc := NewVideosUsecase(&mockVideoRepository{}, &mockContentStore{})
		_, err := uc.View(context.Background(), "missing", "owner")

		if !errors.Is(err, ErrVideoNotFound) {
			t.Errorf("expected ErrVideoNotFound, got: %v", err)
		}
	})
}

// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"
	"os"

	"vidshare_backend/internal/feature/videos/usecase"
	"vidshare_backend/internal/platform/storage"
)

// defaultUploadDir is the local content store root when UPLOAD_DIR is unset.
const defaultUploadDir = "uploads"

// NewContentStore creates a ContentStore implementation.
// If an S3 bucket is configured, it returns the S3-backed store.
// Otherwise, it falls back to the local disk store.
func NewContentStore(ctx context.Context) (usecase.ContentStore, error) {
	cfg := storage.LoadS3Config()
	if cfg.Bucket != "" {
		store, err := storage.NewS3Store(ctx, cfg)
		if err != nil {
			return nil, err
		}
		slog.Info("using S3 content store", "bucket", cfg.Bucket)
		return store, nil
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = defaultUploadDir
	}
	slog.Info("using disk content store", "dir", dir)
	return storage.NewDiskStore(dir)
}

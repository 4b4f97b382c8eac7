// Package storage provides content store implementations for uploaded media.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"vidshare_backend/internal/feature/videos/usecase"
)

// DiskStore implements usecase.ContentStore on the local filesystem.
// Handles map to flat file names under the root directory.
type DiskStore struct {
	root string
}

// Compile-time check to ensure DiskStore implements ContentStore.
var _ usecase.ContentStore = (*DiskStore)(nil)

// NewDiskStore creates the root directory if needed and returns a DiskStore.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes the content to a temporary file and renames it into place, so
// a request abandoned mid-write never leaves a partial file under the handle.
func (s *DiskStore) Save(ctx context.Context, name string, content io.Reader) error {
	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.root, name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to finalize content: %w", err)
	}
	return nil
}

// Open returns a reader over the stored content.
func (s *DiskStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open content %q: %w", name, err)
	}
	return f, nil
}

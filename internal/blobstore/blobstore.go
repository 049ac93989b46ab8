// Package blobstore stores profile picture binaries outside the relational
// database. Rows reference blobs by key; the store never versions them, so
// saving over a key or deleting one discards the previous binary.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store abstracts the binary storage backend for uploaded files.
type Store interface {
	// Save writes the blob under key, replacing any existing content.
	Save(ctx context.Context, key string, contentType string, r io.Reader) error
	// Delete removes the blob under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// LocalStore keeps blobs as files under a base directory.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates the base directory if needed and returns a LocalStore.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory %s: %w", baseDir, err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// path anchors key under the base directory. Cleaning the key as a rooted
// path strips any leading dot segments, so keys cannot escape baseDir.
func (s *LocalStore) path(key string) string {
	return filepath.Join(s.baseDir, filepath.Clean("/"+key))
}

// Save writes the blob to disk, creating intermediate directories for
// keys that contain path separators.
func (s *LocalStore) Save(ctx context.Context, key string, contentType string, r io.Reader) error {
	dst := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for blob %s: %w", key, err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create blob file %s: %w", key, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

// Delete removes the blob file; a missing file is ignored.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	dst := s.path(key)
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

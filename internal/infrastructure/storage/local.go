// Package storage implements the object-storage collaborator contract on
// the local filesystem. Production swaps this adapter for a real object
// store behind the same port; nothing above the port knows the difference.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andromedanny/storefront-service/internal/domain"
)

type LocalStorage struct {
	baseDir string
	baseURL string
}

func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, data []byte, bucket, filename, contentType string) (*domain.UploadedObject, error) {
	dir := filepath.Join(s.baseDir, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating bucket dir: %w", err)
	}

	path := filepath.Join(bucket, filename)
	if err := os.WriteFile(filepath.Join(s.baseDir, path), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing object: %w", err)
	}

	return &domain.UploadedObject{
		URL:  s.baseURL + "/" + filepath.ToSlash(path),
		Path: filepath.ToSlash(path),
	}, nil
}

// Delete is fail-soft per the storage contract: a missing object is not an
// error.
func (s *LocalStorage) Delete(ctx context.Context, bucket, path string) error {
	full := filepath.Join(s.baseDir, filepath.FromSlash(path))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting object: %w", err)
	}
	return nil
}

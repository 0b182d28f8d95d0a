package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store saves uploaded blobs under a category namespace and returns the
// public URL the stored file is served from.
type Store interface {
	Save(ctx context.Context, category, filename string, data []byte, contentType string) (string, error)
}

// Categories are the fixed upload namespaces; directories for each are
// created at process start, not per request.
var Categories = []string{"profile", "project", "general"}

// LocalStore writes uploads to a category-namespaced directory on disk.
type LocalStore struct {
	baseDir string
	baseURL string
}

// NewLocalStore creates the category directories and returns the store.
func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	for _, category := range Categories {
		dir := filepath.Join(baseDir, category)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return &LocalStore{baseDir: baseDir, baseURL: baseURL}, nil
}

func (s *LocalStore) Save(ctx context.Context, category, filename string, data []byte, contentType string) (string, error) {
	path := filepath.Join(s.baseDir, category, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, category, filename), nil
}

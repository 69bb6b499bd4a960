package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dicky/portfolio/internal/application/media"
)

var _ media.ObjectStorage = (*LocalObjectStorage)(nil)

// LocalObjectStorage writes media to a directory that the HTTP server
// exposes under URLPrefix. It is meant for development and single-host
// deployments without a bucket.
type LocalObjectStorage struct {
	Root      string
	URLPrefix string
}

// NewLocalObjectStorage creates the root directory if needed
func NewLocalObjectStorage(root, urlPrefix string) (*LocalObjectStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalObjectStorage{Root: root, URLPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *LocalObjectStorage) path(storageKey string) (string, error) {
	if storageKey == "" {
		return "", errors.New("storage key is required")
	}
	clean := filepath.Clean(filepath.FromSlash(storageKey))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("storage key escapes root: %s", storageKey)
	}
	return filepath.Join(s.Root, clean), nil
}

// Upload writes data to Root/storageKey
func (s *LocalObjectStorage) Upload(_ context.Context, storageKey string, data []byte, _ string) error {
	p, err := s.path(storageKey)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}
	return nil
}

// DeleteObject removes the file; a missing file is not an error
func (s *LocalObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	p, err := s.path(storageKey)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// PublicURL returns URLPrefix/storageKey
func (s *LocalObjectStorage) PublicURL(storageKey string) string {
	return s.URLPrefix + "/" + storageKey
}

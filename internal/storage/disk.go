package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore is an ObjectStore rooted at a local directory. Deployments that
// use a hosted object store swap this adapter out without touching callers.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create object store root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Put(_ context.Context, bucket, key string, data []byte) (string, error) {
	locator := bucket + "/" + key
	path := filepath.Join(s.root, filepath.FromSlash(locator))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create bucket dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	return locator, nil
}

func (s *DiskStore) Delete(_ context.Context, locator string) error {
	// Refuse to escape the store root.
	if strings.Contains(locator, "..") {
		return fmt.Errorf("invalid object locator %q", locator)
	}
	path := filepath.Join(s.root, filepath.FromSlash(locator))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

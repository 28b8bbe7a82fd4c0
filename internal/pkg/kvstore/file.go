package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// keyPattern keeps keys to plain names so they map directly to filenames.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// FileStore persists each key as a JSON file under a base directory.
type FileStore struct {
	basePath string
}

func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	fullPath := filepath.Join(s.basePath, filepath.Clean(key)+".json")
	// Guard against traversal even though the pattern already forbids separators.
	if !strings.HasPrefix(fullPath, s.basePath) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return fullPath, nil
}

func (s *FileStore) Load(key string) ([]byte, bool, error) {
	fullPath, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return data, true, nil
}

func (s *FileStore) Save(key string, value []byte) error {
	fullPath, err := s.path(key)
	if err != nil {
		return err
	}
	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Remove(key string) error {
	fullPath, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil // already gone
		}
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

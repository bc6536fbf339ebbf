package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/yourorg/news-admin/internal/config"

	"go.uber.org/zap"
)

// LocalStorage implements the Storage interface on the local filesystem.
// Each slot is a single <key>.json file under the base path, replaced
// atomically on every write so a crash never leaves a half-written snapshot.
type LocalStorage struct {
	basePath    string
	permissions os.FileMode
	logger      *zap.Logger
}

// NewLocalStorage creates a new LocalStorage
func NewLocalStorage(cfg *config.StorageConfig, logger *zap.Logger) (*LocalStorage, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	// Parse permissions string
	perms, err := strconv.ParseUint(cfg.Permissions, 8, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid permissions format: %w", err)
	}

	return &LocalStorage{
		basePath:    cfg.BasePath,
		permissions: os.FileMode(perms),
		logger:      logger,
	}, nil
}

// Read returns the full content of a slot
func (s *LocalStorage) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(s.slotPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, nil
}

// Write replaces the full content of a slot via a temp file and rename
func (s *LocalStorage) Write(key string, data []byte) error {
	tmp, err := os.CreateTemp(s.basePath, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for slot %s: %w", key, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for slot %s: %w", key, err)
	}

	if err := os.Chmod(tmp.Name(), s.permissions); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to set slot permissions: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.slotPath(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace slot %s: %w", key, err)
	}

	return nil
}

// Delete removes a slot; an absent slot is not an error
func (s *LocalStorage) Delete(key string) error {
	if err := os.Remove(s.slotPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) slotPath(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

package storage

import (
	"errors"

	"github.com/yourorg/news-admin/internal/config"

	"go.uber.org/zap"
)

// Slot keys used by the admin console. Each slot holds one JSON document.
const (
	KeyNewsItems      = "news_items"
	KeyUsers          = "users"
	KeyAdvertisements = "advertisements"
	KeyAdminToken     = "admin_token"
)

// ErrNotFound is returned when a slot has never been written or was deleted
var ErrNotFound = errors.New("storage: key not found")

// Storage defines the interface for durable key-value slots.
// Writes replace the entire slot content; there is no partial update.
type Storage interface {
	// Read returns the full content of a slot
	Read(key string) ([]byte, error)

	// Write replaces the full content of a slot
	Write(key string, data []byte) error

	// Delete removes a slot; deleting an absent slot is not an error
	Delete(key string) error
}

// New creates a new storage implementation based on the configuration
func New(cfg *config.Config, logger *zap.Logger) (Storage, error) {
	switch cfg.Storage.Type {
	case "local":
		return NewLocalStorage(&cfg.Storage, logger)
	case "memory":
		return NewMemoryStorage(), nil
	default:
		// Default to local storage
		return NewLocalStorage(&cfg.Storage, logger)
	}
}

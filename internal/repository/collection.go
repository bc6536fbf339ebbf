package repository

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/yourorg/news-admin/internal/storage"

	"go.uber.org/zap"
)

// Collection is an in-memory ordered collection of one entity type, mirrored
// to a durable storage slot. Every mutation rewrites the full snapshot; a
// failed write is logged and ignored, leaving the in-memory state
// authoritative for the rest of the session.
type Collection[T any] struct {
	mu     sync.RWMutex
	key    string
	store  storage.Storage
	logger *zap.Logger
	idOf   func(T) string
	items  []T

	// issued tracks every id handed out in this session, including ids of
	// records that were deleted later, so an id is never reissued.
	issued map[string]struct{}
}

// NewCollection loads the prior snapshot for key, falling back to a copy of
// seed when no snapshot exists or it cannot be decoded.
func NewCollection[T any](key string, store storage.Storage, seed []T, idOf func(T) string, logger *zap.Logger) *Collection[T] {
	c := &Collection[T]{
		key:    key,
		store:  store,
		logger: logger,
		idOf:   idOf,
		issued: make(map[string]struct{}),
	}

	c.items = c.load(seed)
	for _, item := range c.items {
		c.issued[idOf(item)] = struct{}{}
	}

	return c
}

// load reads the snapshot or returns a copy of the seed collection.
// Decode failures must not propagate; seed data is the documented fallback.
func (c *Collection[T]) load(seed []T) []T {
	data, err := c.store.Read(c.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Warn("failed to load snapshot, using seed data",
				zap.String("key", c.key),
				zap.Error(err))
		}
		return append([]T(nil), seed...)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn("failed to decode snapshot, using seed data",
			zap.String("key", c.key),
			zap.Error(err))
		return append([]T(nil), seed...)
	}

	return items
}

// Insert prepends a record and persists the snapshot
func (c *Collection[T]) Insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append([]T{item}, c.items...)
	c.issued[c.idOf(item)] = struct{}{}

	if err := c.persist(); err != nil {
		c.logger.Warn("failed to persist snapshot after insert",
			zap.String("key", c.key),
			zap.Error(err))
	}
}

// Apply mutates the record with the given id in place and persists the
// snapshot. It reports whether the record was found; an absent id is a no-op.
func (c *Collection[T]) Apply(id string, mutate func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) != id {
			continue
		}

		mutate(&c.items[i])

		if err := c.persist(); err != nil {
			c.logger.Warn("failed to persist snapshot after update",
				zap.String("key", c.key),
				zap.Error(err))
		}
		return true
	}

	return false
}

// Remove hard-deletes the record with the given id and persists the snapshot.
// It reports whether the record was found; an absent id is a no-op.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) != id {
			continue
		}

		c.items = append(c.items[:i], c.items[i+1:]...)

		if err := c.persist(); err != nil {
			c.logger.Warn("failed to persist snapshot after delete",
				zap.String("key", c.key),
				zap.Error(err))
		}
		return true
	}

	return false
}

// Items returns a snapshot copy of the collection
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]T(nil), c.items...)
}

// Find returns the record with the given id
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// Len returns the current collection size
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Unique reports whether id has never been issued in this session
func (c *Collection[T]) Unique(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, taken := c.issued[id]
	return !taken
}

// persist rewrites the full snapshot. Callers hold the lock and decide what
// to do with the error; durability is best-effort.
func (c *Collection[T]) persist() error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	return c.store.Write(c.key, data)
}

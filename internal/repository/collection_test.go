package repository

import (
	"errors"
	"testing"

	"github.com/yourorg/news-admin/internal/model"
	"github.com/yourorg/news-admin/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// unwritableStorage accepts reads but fails every write, standing in for a
// full or otherwise broken durable slot.
type unwritableStorage struct {
	inner *storage.MemoryStorage
}

func newUnwritableStorage() *unwritableStorage {
	return &unwritableStorage{inner: storage.NewMemoryStorage()}
}

func (s *unwritableStorage) Read(key string) ([]byte, error) {
	return s.inner.Read(key)
}

func (s *unwritableStorage) Write(key string, data []byte) error {
	return errors.New("quota exceeded")
}

func (s *unwritableStorage) Delete(key string) error {
	return s.inner.Delete(key)
}

func TestCollectionMutationsSurviveFailedWrites(t *testing.T) {
	store := newUnwritableStorage()
	repo := NewNewsRepository(store, zap.NewNop())

	created := repo.Create(model.NewsCreate{
		Title:    "Ephemeral Item",
		Content:  "Body",
		Category: "Science",
	})

	// The in-memory collection is authoritative even when no write landed
	items := repo.List()
	require.Len(t, items, 6)
	assert.Equal(t, created.ID, items[0].ID)

	title := "Renamed Item"
	require.True(t, repo.Update(created.ID, model.NewsUpdate{Title: &title}))
	got, ok := repo.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed Item", got.Title)

	require.True(t, repo.Delete(created.ID))
	assert.Len(t, repo.List(), 5)

	// Nothing ever reached the durable slot
	_, err := store.inner.Read(storage.KeyNewsItems)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

package repository

import (
	"regexp"
	"testing"

	"github.com/yourorg/news-admin/internal/model"
	"github.com/yourorg/news-admin/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userIDPattern = regexp.MustCompile(`^USER-[0-9A-F]{6}$`)

func TestUserRepositorySeedsWhenEmpty(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStorage(), zap.NewNop())

	users := repo.List()
	require.Len(t, users, 10)
	assert.Equal(t, "USER-1AB2CD", users[0].ID)
}

func TestUserRepositoryCreate(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStorage(), zap.NewNop())

	created := repo.Create(model.UserCreate{
		Name:   "Alex Chen",
		Email:  "alex.chen@example.com",
		Mobile: "+1 (555) 111-2222",
		Role:   "Author",
	})

	assert.Regexp(t, userIDPattern, created.ID)
	assert.Equal(t, model.UserStatusActive, created.Status, "status defaults to active")
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	users := repo.List()
	require.Len(t, users, 11)
	assert.Equal(t, created.ID, users[0].ID)
}

func TestUserRepositoryUpdateKeepsIdentity(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStorage(), zap.NewNop())

	before, ok := repo.Get("USER-5IJ6KL")
	require.True(t, ok)

	status := model.UserStatusActive
	location := "Houston, USA"
	require.True(t, repo.Update("USER-5IJ6KL", model.UserUpdate{
		Status:   &status,
		Location: &location,
	}))

	after, ok := repo.Get("USER-5IJ6KL")
	require.True(t, ok)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.Equal(t, model.UserStatusActive, after.Status)
	assert.Equal(t, "Houston, USA", after.Location)
	assert.Equal(t, before.Name, after.Name)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestUserRepositoryDelete(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStorage(), zap.NewNop())

	require.True(t, repo.Delete("USER-9KL0MN"))
	assert.Len(t, repo.List(), 9)
	assert.False(t, repo.Delete("USER-9KL0MN"))
}

func TestUserRepositoryFallsBackOnCorruptSnapshot(t *testing.T) {
	store := storage.NewMemoryStorage()
	require.NoError(t, store.Write(storage.KeyUsers, []byte(`"not an array"`)))

	repo := NewUserRepository(store, zap.NewNop())
	assert.Len(t, repo.List(), 10)
}

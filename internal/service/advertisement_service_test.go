package service

import (
	"testing"

	"github.com/yourorg/news-admin/internal/model"
	"github.com/yourorg/news-admin/internal/repository"
	"github.com/yourorg/news-admin/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAdvertisementService(t *testing.T) *AdvertisementService {
	t.Helper()

	store := storage.NewMemoryStorage()
	logger := zap.NewNop()
	adRepo := repository.NewAdvertisementRepository(store, logger)
	newsRepo := repository.NewNewsRepository(store, logger)
	return NewAdvertisementService(adRepo, newsRepo, logger)
}

func TestAdvertisementServiceAdd(t *testing.T) {
	svc := newAdvertisementService(t)

	created, err := svc.Add(model.AdvertisementCreate{
		Title:    "Spring Campaign",
		Image:    "https://example.com/banner.png",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, svc.List(), 1)
}

func TestAdvertisementServiceAddRejectsBadRedirectURL(t *testing.T) {
	svc := newAdvertisementService(t)

	_, err := svc.Add(model.AdvertisementCreate{
		Title:       "Broken",
		Image:       "https://example.com/banner.png",
		RedirectURL: "not a url",
	})
	assert.Error(t, err)
	assert.Empty(t, svc.List())
}

func TestAdvertisementServiceToggleStatus(t *testing.T) {
	svc := newAdvertisementService(t)

	created, err := svc.Add(model.AdvertisementCreate{
		Title:    "Toggle",
		Image:    "https://example.com/banner.png",
		IsActive: true,
	})
	require.NoError(t, err)

	svc.ToggleStatus(created.ID)
	got, ok := svc.Get(created.ID)
	require.True(t, ok)
	assert.False(t, got.IsActive)
	assert.Empty(t, svc.Active())

	svc.ToggleStatus(created.ID)
	assert.Len(t, svc.Active(), 1)
}

func TestAdvertisementServicePostTitlesResolvesDanglingLinks(t *testing.T) {
	svc := newAdvertisementService(t)

	created, err := svc.Add(model.AdvertisementCreate{
		Title:   "Linked",
		Image:   "https://example.com/banner.png",
		PostIDs: []string{"NEWS-1MF93K", "NEWS-DELETED"},
	})
	require.NoError(t, err)

	titles := svc.PostTitles(created)
	assert.Equal(t, []string{"New Technology Breakthrough in AI", UnknownPostTitle}, titles)
}

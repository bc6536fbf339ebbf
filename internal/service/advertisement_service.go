package service

import (
	"fmt"

	"github.com/yourorg/news-admin/internal/model"
	"github.com/yourorg/news-admin/internal/repository"

	"go.uber.org/zap"
)

// UnknownPostTitle is shown for advertisement links whose news item has been
// deleted. Dangling references are tolerated; there is no cascading delete.
const UnknownPostTitle = "Unknown Post"

// AdvertisementService handles advertisement CRUD and resolution of the
// non-owning links to news posts
type AdvertisementService struct {
	repo     *repository.AdvertisementRepository
	newsRepo *repository.NewsRepository
	logger   *zap.Logger
}

// NewAdvertisementService creates a new advertisement service
func NewAdvertisementService(repo *repository.AdvertisementRepository, newsRepo *repository.NewsRepository, logger *zap.Logger) *AdvertisementService {
	return &AdvertisementService{
		repo:     repo,
		newsRepo: newsRepo,
		logger:   logger,
	}
}

// Add validates the draft and creates a new advertisement
func (s *AdvertisementService) Add(draft model.AdvertisementCreate) (model.Advertisement, error) {
	if err := validate.Struct(draft); err != nil {
		return model.Advertisement{}, fmt.Errorf("invalid advertisement draft: %w", err)
	}

	ad := s.repo.Create(draft)
	s.logger.Info("advertisement created", zap.String("id", ad.ID), zap.String("title", ad.Title))
	return ad, nil
}

// Update applies a partial patch to the advertisement with the given id.
// An unknown id is silently ignored.
func (s *AdvertisementService) Update(id string, patch model.AdvertisementUpdate) {
	if !s.repo.Update(id, patch) {
		s.logger.Debug("update ignored, advertisement not found", zap.String("id", id))
	}
}

// Delete removes the advertisement with the given id.
// An unknown id is silently ignored.
func (s *AdvertisementService) Delete(id string) {
	if !s.repo.Delete(id) {
		s.logger.Debug("delete ignored, advertisement not found", zap.String("id", id))
	}
}

// ToggleStatus flips the active flag of the advertisement with the given id.
// An unknown id is silently ignored.
func (s *AdvertisementService) ToggleStatus(id string) {
	if !s.repo.ToggleStatus(id) {
		s.logger.Debug("toggle ignored, advertisement not found", zap.String("id", id))
	}
}

// Get returns the advertisement with the given id
func (s *AdvertisementService) Get(id string) (model.Advertisement, bool) {
	return s.repo.Get(id)
}

// List returns the full collection, most recently created first
func (s *AdvertisementService) List() []model.Advertisement {
	return s.repo.List()
}

// Active returns the advertisements currently switched on
func (s *AdvertisementService) Active() []model.Advertisement {
	ads := s.repo.List()
	active := make([]model.Advertisement, 0, len(ads))
	for _, ad := range ads {
		if ad.IsActive {
			active = append(active, ad)
		}
	}
	return active
}

// PostTitles resolves the linked news post titles for display. Links to
// deleted news items resolve to UnknownPostTitle.
func (s *AdvertisementService) PostTitles(ad model.Advertisement) []string {
	titles := make([]string, 0, len(ad.PostIDs))
	for _, postID := range ad.PostIDs {
		if item, ok := s.newsRepo.Get(postID); ok {
			titles = append(titles, item.Title)
		} else {
			titles = append(titles, UnknownPostTitle)
		}
	}
	return titles
}

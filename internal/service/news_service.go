package service

import (
	"fmt"
	"sync"

	"github.com/yourorg/news-admin/internal/config"
	"github.com/yourorg/news-admin/internal/model"
	"github.com/yourorg/news-admin/internal/repository"
	"github.com/yourorg/news-admin/internal/utils"

	"go.uber.org/zap"
)

// NewsService handles news CRUD plus the view state for the news dashboard:
// search term, category filter and pagination. The derived projections
// (Filtered, Page, TotalPages) are recomputed from the raw collection on
// every read.
type NewsService struct {
	repo   *repository.NewsRepository
	logger *zap.Logger

	mu               sync.RWMutex
	searchTerm       string
	selectedCategory string
	currentPage      int
	itemsPerPage     int
}

// NewNewsService creates a new news service
func NewNewsService(repo *repository.NewsRepository, cfg *config.Config, logger *zap.Logger) *NewsService {
	itemsPerPage := cfg.Pagination.ItemsPerPage
	if itemsPerPage < 1 {
		itemsPerPage = 10
	}

	return &NewsService{
		repo:             repo,
		logger:           logger,
		selectedCategory: CategoryAll,
		currentPage:      1,
		itemsPerPage:     itemsPerPage,
	}
}

// Add validates the draft and creates a new news item
func (s *NewsService) Add(draft model.NewsCreate) (model.NewsItem, error) {
	if err := validate.Struct(draft); err != nil {
		return model.NewsItem{}, fmt.Errorf("invalid news draft: %w", err)
	}

	item := s.repo.Create(draft)
	s.logger.Info("news item created", zap.String("id", item.ID), zap.String("title", item.Title))
	return item, nil
}

// Update applies a partial patch to the news item with the given id.
// An unknown id is silently ignored.
func (s *NewsService) Update(id string, patch model.NewsUpdate) {
	if !s.repo.Update(id, patch) {
		s.logger.Debug("update ignored, news item not found", zap.String("id", id))
	}
}

// Delete removes the news item with the given id.
// An unknown id is silently ignored.
func (s *NewsService) Delete(id string) {
	if !s.repo.Delete(id) {
		s.logger.Debug("delete ignored, news item not found", zap.String("id", id))
	}
}

// Get returns the news item with the given id
func (s *NewsService) Get(id string) (model.NewsItem, bool) {
	return s.repo.Get(id)
}

// List returns the full collection, most recently created first
func (s *NewsService) List() []model.NewsItem {
	return s.repo.List()
}

// SetSearchTerm updates the search filter
func (s *NewsService) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// SetSelectedCategory updates the category filter and resets to the first page
func (s *NewsService) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
	s.currentPage = 1
}

// SetCurrentPage moves the view to the given 1-based page
func (s *NewsService) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
}

// SearchTerm returns the current search filter
func (s *NewsService) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchTerm
}

// SelectedCategory returns the current category filter
func (s *NewsService) SelectedCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedCategory
}

// CurrentPage returns the current 1-based page
func (s *NewsService) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// ItemsPerPage returns the page size
func (s *NewsService) ItemsPerPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemsPerPage
}

// Filtered returns the collection filtered by the current search term and
// category
func (s *NewsService) Filtered() []model.NewsItem {
	s.mu.RLock()
	term, category := s.searchTerm, s.selectedCategory
	s.mu.RUnlock()

	return FilterNews(s.repo.List(), term, category)
}

// Page returns the current page of the filtered collection
func (s *NewsService) Page() []model.NewsItem {
	s.mu.RLock()
	page, perPage := s.currentPage, s.itemsPerPage
	s.mu.RUnlock()

	return utils.Paginate(s.Filtered(), page, perPage)
}

// TotalPages returns the number of pages in the filtered collection
func (s *NewsService) TotalPages() int {
	s.mu.RLock()
	perPage := s.itemsPerPage
	s.mu.RUnlock()

	return utils.TotalPages(len(s.Filtered()), perPage)
}

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

// UserService handles user CRUD plus the view state for the user dashboard:
// search term, sort selection and pagination
type UserService struct {
	repo   *repository.UserRepository
	logger *zap.Logger

	mu            sync.RWMutex
	searchTerm    string
	sortField     string
	sortDirection string
	currentPage   int
	itemsPerPage  int
}

// NewUserService creates a new user service
func NewUserService(repo *repository.UserRepository, cfg *config.Config, logger *zap.Logger) *UserService {
	itemsPerPage := cfg.Pagination.ItemsPerPage
	if itemsPerPage < 1 {
		itemsPerPage = 10
	}

	return &UserService{
		repo:          repo,
		logger:        logger,
		sortDirection: utils.SortAsc,
		currentPage:   1,
		itemsPerPage:  itemsPerPage,
	}
}

// Add validates the draft and creates a new user
func (s *UserService) Add(draft model.UserCreate) (model.User, error) {
	if err := validate.Struct(draft); err != nil {
		return model.User{}, fmt.Errorf("invalid user draft: %w", err)
	}

	user := s.repo.Create(draft)
	s.logger.Info("user created", zap.String("id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// Update applies a partial patch to the user with the given id.
// An unknown id is silently ignored.
func (s *UserService) Update(id string, patch model.UserUpdate) {
	if !s.repo.Update(id, patch) {
		s.logger.Debug("update ignored, user not found", zap.String("id", id))
	}
}

// Delete removes the user with the given id.
// An unknown id is silently ignored.
func (s *UserService) Delete(id string) {
	if !s.repo.Delete(id) {
		s.logger.Debug("delete ignored, user not found", zap.String("id", id))
	}
}

// Get returns the user with the given id
func (s *UserService) Get(id string) (model.User, bool) {
	return s.repo.Get(id)
}

// List returns the full collection, most recently created first
func (s *UserService) List() []model.User {
	return s.repo.List()
}

// SetSearchTerm updates the search filter
func (s *UserService) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// SetSorting selects the sort field and direction. An empty field preserves
// the collection order.
func (s *UserService) SetSorting(field, direction string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortField = field
	s.sortDirection = utils.NormalizeSortDirection(direction)
}

// SetCurrentPage moves the view to the given 1-based page
func (s *UserService) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
}

// SearchTerm returns the current search filter
func (s *UserService) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchTerm
}

// Sorting returns the current sort field and direction
func (s *UserService) Sorting() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortField, s.sortDirection
}

// CurrentPage returns the current 1-based page
func (s *UserService) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// ItemsPerPage returns the page size
func (s *UserService) ItemsPerPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemsPerPage
}

// Filtered returns the collection filtered by the search term and sorted by
// the current sort selection
func (s *UserService) Filtered() []model.User {
	s.mu.RLock()
	term, field, direction := s.searchTerm, s.sortField, s.sortDirection
	s.mu.RUnlock()

	return SortUsers(FilterUsers(s.repo.List(), term), field, direction)
}

// Page returns the current page of the filtered, sorted collection
func (s *UserService) Page() []model.User {
	s.mu.RLock()
	page, perPage := s.currentPage, s.itemsPerPage
	s.mu.RUnlock()

	return utils.Paginate(s.Filtered(), page, perPage)
}

// TotalPages returns the number of pages in the filtered collection
func (s *UserService) TotalPages() int {
	s.mu.RLock()
	perPage := s.itemsPerPage
	s.mu.RUnlock()

	return utils.TotalPages(len(s.Filtered()), perPage)
}

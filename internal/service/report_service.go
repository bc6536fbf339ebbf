package service

import (
	"strings"
	"sync"
	"time"

	"github.com/yourorg/news-admin/internal/model"

	"go.uber.org/zap"
)

// ReportService holds the registry of reader reports filed against articles.
// The registry is session-scoped and seeded with the built-in fixtures.
type ReportService struct {
	logger *zap.Logger

	mu      sync.RWMutex
	reports []model.NewsReport
}

// NewReportService creates a new report service
func NewReportService(logger *zap.Logger) *ReportService {
	now := time.Now().UTC()

	return &ReportService{
		logger: logger,
		reports: []model.NewsReport{
			{
				ID:           "REP-001",
				ArticleID:    "NEWS-1MF93K",
				ArticleTitle: "New Technology Breakthrough in AI",
				Reporter:     "John Doe",
				Reason:       "Inappropriate content",
				ReportedAt:   now,
			},
			{
				ID:           "REP-002",
				ArticleID:    "NEWS-2AB7CD",
				ArticleTitle: "Global Summit on Climate Change Begins",
				Reporter:     "Jane Smith",
				Reason:       "Misinformation",
				ReportedAt:   now.Add(-24 * time.Hour),
			},
		},
	}
}

// All returns a snapshot of every report
func (s *ReportService) All() []model.NewsReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.NewsReport(nil), s.reports...)
}

// Search returns the reports whose article title, reporter or reason contains
// the term (case-insensitive). An empty term matches everything.
func (s *ReportService) Search(term string) []model.NewsReport {
	term = strings.ToLower(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.NewsReport, 0, len(s.reports))
	for _, report := range s.reports {
		if term == "" ||
			strings.Contains(strings.ToLower(report.ArticleTitle), term) ||
			strings.Contains(strings.ToLower(report.Reporter), term) ||
			strings.Contains(strings.ToLower(report.Reason), term) {
			matched = append(matched, report)
		}
	}
	return matched
}

// ForArticle returns the report filed against the given article
func (s *ReportService) ForArticle(articleID string) (model.NewsReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, report := range s.reports {
		if report.ArticleID == articleID {
			return report, true
		}
	}
	return model.NewsReport{}, false
}

// IsReported reports whether the given article has been reported
func (s *ReportService) IsReported(articleID string) bool {
	_, ok := s.ForArticle(articleID)
	return ok
}

// ReportedArticleIDs returns the ids of every reported article
func (s *ReportService) ReportedArticleIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.reports))
	for _, report := range s.reports {
		ids = append(ids, report.ArticleID)
	}
	return ids
}

// Remove dismisses the report with the given id.
// An unknown id is silently ignored.
func (s *ReportService) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			return
		}
	}
}

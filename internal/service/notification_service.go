package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/yourorg/news-admin/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService holds the session-scoped notification queue. Nothing
// here is persisted; a fresh session starts from the built-in fixtures.
// The unread count is derived from the queue on every read so it can never
// drift from the underlying list.
type NotificationService struct {
	logger *zap.Logger

	mu            sync.RWMutex
	notifications []model.AppNotification
}

// NewNotificationService creates a new notification service
func NewNotificationService(logger *zap.Logger) *NotificationService {
	now := time.Now().UTC()

	return &NotificationService{
		logger: logger,
		notifications: []model.AppNotification{
			{
				ID:        "note-1",
				Title:     "New Article Reported",
				Message:   "Article 'New Technology Breakthrough in AI' has been reported for inappropriate content",
				Type:      model.NotificationTypeWarning,
				CreatedAt: now.Add(-30 * time.Minute),
				Read:      false,
				LinkTo:    "/reports",
				Source:    model.NotificationSourceReport,
			},
			{
				ID:        "note-2",
				Title:     "Comment Added",
				Message:   "New comment on 'Global Summit on Climate Change Begins'",
				Type:      model.NotificationTypeInfo,
				CreatedAt: now.Add(-time.Hour),
				Read:      true,
				LinkTo:    "/news/NEWS-2AB7CD",
				Source:    model.NotificationSourceComment,
			},
		},
	}
}

// Add prepends a new unread notification
func (s *NotificationService) Add(draft model.NotificationCreate) model.AppNotification {
	note := model.AppNotification{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		Message:   draft.Message,
		Type:      draft.Type,
		CreatedAt: time.Now().UTC(),
		Read:      false,
		LinkTo:    draft.LinkTo,
		Source:    draft.Source,
	}

	s.mu.Lock()
	s.notifications = append([]model.AppNotification{note}, s.notifications...)
	s.mu.Unlock()

	return note
}

// MarkRead marks the notification with the given id as read.
// An unknown id is silently ignored.
func (s *NotificationService) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// MarkAllRead marks every notification as read
func (s *NotificationService) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// Remove deletes the notification with the given id.
// An unknown id is silently ignored.
func (s *NotificationService) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearAll empties the queue
func (s *NotificationService) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = nil
}

// List returns a snapshot of the queue, newest first
func (s *NotificationService) List() []model.AppNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.AppNotification(nil), s.notifications...)
}

// UnreadCount counts the unread notifications
func (s *NotificationService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, note := range s.notifications {
		if !note.Read {
			count++
		}
	}
	return count
}

// NewReportNotification builds the draft for a newly reported article
func NewReportNotification(articleTitle string) model.NotificationCreate {
	return model.NotificationCreate{
		Title:   "New Article Reported",
		Message: fmt.Sprintf("Article '%s' has been reported and needs review", articleTitle),
		Type:    model.NotificationTypeWarning,
		LinkTo:  "/reports",
		Source:  model.NotificationSourceReport,
	}
}

// NewCommentNotification builds the draft for a new comment on an article
func NewCommentNotification(articleTitle, articleID string) model.NotificationCreate {
	return model.NotificationCreate{
		Title:   "New Comment Added",
		Message: fmt.Sprintf("New comment on article '%s'", articleTitle),
		Type:    model.NotificationTypeInfo,
		LinkTo:  "/news/" + articleID,
		Source:  model.NotificationSourceComment,
	}
}

// NewSystemNotification builds the draft for a system message
func NewSystemNotification(title, message string) model.NotificationCreate {
	return model.NotificationCreate{
		Title:   title,
		Message: message,
		Type:    model.NotificationTypeInfo,
		Source:  model.NotificationSourceSystem,
	}
}

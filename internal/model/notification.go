package model

import (
	"time"
)

// Notification types
const (
	NotificationTypeInfo    = "info"
	NotificationTypeWarning = "warning"
	NotificationTypeSuccess = "success"
	NotificationTypeError   = "error"
)

// Notification sources
const (
	NotificationSourceReport  = "report"
	NotificationSourceComment = "comment"
	NotificationSourceNews    = "news"
	NotificationSourceSystem  = "system"
	NotificationSourceUser    = "user"
)

// AppNotification represents an in-app notification shown to the admin.
// Notifications are session-scoped and never persisted.
type AppNotification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
	LinkTo    string    `json:"linkTo,omitempty"`
	Source    string    `json:"source"`
}

// NotificationCreate represents data needed to create a notification
type NotificationCreate struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=info warning success error"`
	LinkTo  string `json:"linkTo,omitempty"`
	Source  string `json:"source" validate:"required,oneof=report comment news system user"`
}

package model

import (
	"time"
)

// NewsItem represents a published or draft news article
type NewsItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Image     string    `json:"image,omitempty"`
	Audio     string    `json:"audio,omitempty"`
	Video     string    `json:"video,omitempty"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewsCreate represents data needed to create a news item
type NewsCreate struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Image    string   `json:"image,omitempty"`
	Audio    string   `json:"audio,omitempty"`
	Video    string   `json:"video,omitempty"`
	Keywords []string `json:"keywords"`
}

// NewsUpdate represents a partial patch for a news item.
// Nil fields are left unchanged; id and createdAt are never patchable.
type NewsUpdate struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Category *string  `json:"category"`
	Image    *string  `json:"image"`
	Audio    *string  `json:"audio"`
	Video    *string  `json:"video"`
	Keywords []string `json:"keywords"`
}

package model

import (
	"time"
)

// Advertisement represents an ad campaign linked to zero or more news posts.
// PostIDs is a non-owning link: referenced news items may have been deleted,
// and the display layer resolves those as "Unknown Post".
type Advertisement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	RedirectURL string    `json:"redirectUrl,omitempty"`
	PostIDs     []string  `json:"postIds"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AdvertisementCreate represents data needed to create an advertisement
type AdvertisementCreate struct {
	Title       string   `json:"title" validate:"required"`
	Image       string   `json:"image" validate:"required"`
	RedirectURL string   `json:"redirectUrl" validate:"omitempty,url"`
	PostIDs     []string `json:"postIds"`
	IsActive    bool     `json:"isActive"`
}

// AdvertisementUpdate represents a partial patch for an advertisement.
// Nil fields are left unchanged; id and createdAt are never patchable.
type AdvertisementUpdate struct {
	Title       *string  `json:"title"`
	Image       *string  `json:"image"`
	RedirectURL *string  `json:"redirectUrl"`
	PostIDs     []string `json:"postIds"`
	IsActive    *bool    `json:"isActive"`
}

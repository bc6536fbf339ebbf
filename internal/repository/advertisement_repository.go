package repository

import (
	"time"

	"github.com/yourorg/news-admin/internal/model"
	"github.com/yourorg/news-admin/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdvertisementRepository owns the persistent advertisement collection
type AdvertisementRepository struct {
	coll   *Collection[model.Advertisement]
	logger *zap.Logger
}

// NewAdvertisementRepository creates a new AdvertisementRepository backed by
// the given storage
func NewAdvertisementRepository(store storage.Storage, logger *zap.Logger) *AdvertisementRepository {
	coll := NewCollection(storage.KeyAdvertisements, store, SeedAdvertisements(),
		func(a model.Advertisement) string { return a.ID }, logger)

	return &AdvertisementRepository{
		coll:   coll,
		logger: logger,
	}
}

// Create assigns a fresh id and timestamps, prepends the record and returns it
func (r *AdvertisementRepository) Create(draft model.AdvertisementCreate) model.Advertisement {
	now := time.Now().UTC()

	ad := model.Advertisement{
		ID:          r.nextID(),
		Title:       draft.Title,
		Image:       draft.Image,
		RedirectURL: draft.RedirectURL,
		PostIDs:     append([]string(nil), draft.PostIDs...),
		IsActive:    draft.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.coll.Insert(ad)
	return ad
}

// Update merges non-nil patch fields over the record and refreshes updatedAt.
// The id and createdAt are immutable. An absent id is a no-op.
func (r *AdvertisementRepository) Update(id string, patch model.AdvertisementUpdate) bool {
	return r.coll.Apply(id, func(a *model.Advertisement) {
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Image != nil {
			a.Image = *patch.Image
		}
		if patch.RedirectURL != nil {
			a.RedirectURL = *patch.RedirectURL
		}
		if patch.PostIDs != nil {
			a.PostIDs = append([]string(nil), patch.PostIDs...)
		}
		if patch.IsActive != nil {
			a.IsActive = *patch.IsActive
		}
		a.UpdatedAt = time.Now().UTC()
	})
}

// ToggleStatus flips the active flag and refreshes updatedAt
func (r *AdvertisementRepository) ToggleStatus(id string) bool {
	return r.coll.Apply(id, func(a *model.Advertisement) {
		a.IsActive = !a.IsActive
		a.UpdatedAt = time.Now().UTC()
	})
}

// Delete hard-removes the record; an absent id is a no-op
func (r *AdvertisementRepository) Delete(id string) bool {
	return r.coll.Remove(id)
}

// Get returns the record with the given id
func (r *AdvertisementRepository) Get(id string) (model.Advertisement, bool) {
	return r.coll.Find(id)
}

// List returns a snapshot of the collection, most recently created first
func (r *AdvertisementRepository) List() []model.Advertisement {
	return r.coll.Items()
}

// Len returns the current collection size
func (r *AdvertisementRepository) Len() int {
	return r.coll.Len()
}

func (r *AdvertisementRepository) nextID() string {
	for {
		id := uuid.NewString()
		if r.coll.Unique(id) {
			return id
		}
	}
}

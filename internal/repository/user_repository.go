package repository

import (
	"strings"
	"time"

	"github.com/yourorg/news-admin/internal/model"
	"github.com/yourorg/news-admin/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserRepository owns the persistent user collection
type UserRepository struct {
	coll   *Collection[model.User]
	logger *zap.Logger
}

// NewUserRepository creates a new UserRepository backed by the given storage
func NewUserRepository(store storage.Storage, logger *zap.Logger) *UserRepository {
	coll := NewCollection(storage.KeyUsers, store, SeedUsers(),
		func(u model.User) string { return u.ID }, logger)

	return &UserRepository{
		coll:   coll,
		logger: logger,
	}
}

// Create assigns a fresh id and timestamps, prepends the record and returns it
func (r *UserRepository) Create(draft model.UserCreate) model.User {
	now := time.Now().UTC()

	status := draft.Status
	if status == "" {
		status = model.UserStatusActive
	}

	user := model.User{
		ID:        r.nextID(),
		Name:      draft.Name,
		Email:     draft.Email,
		Mobile:    draft.Mobile,
		Location:  draft.Location,
		Role:      draft.Role,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.coll.Insert(user)
	return user
}

// Update merges non-nil patch fields over the record and refreshes updatedAt.
// The id and createdAt are immutable. An absent id is a no-op.
func (r *UserRepository) Update(id string, patch model.UserUpdate) bool {
	return r.coll.Apply(id, func(u *model.User) {
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Mobile != nil {
			u.Mobile = *patch.Mobile
		}
		if patch.Location != nil {
			u.Location = *patch.Location
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		u.UpdatedAt = time.Now().UTC()
	})
}

// Delete hard-removes the record; an absent id is a no-op
func (r *UserRepository) Delete(id string) bool {
	return r.coll.Remove(id)
}

// Get returns the record with the given id
func (r *UserRepository) Get(id string) (model.User, bool) {
	return r.coll.Find(id)
}

// List returns a snapshot of the collection, most recently created first
func (r *UserRepository) List() []model.User {
	return r.coll.Items()
}

// Len returns the current collection size
func (r *UserRepository) Len() int {
	return r.coll.Len()
}

// nextID derives a USER-<6 char token> id, re-rolling until the id has never
// been issued in this session
func (r *UserRepository) nextID() string {
	for {
		id := "USER-" + strings.ToUpper(uuid.NewString()[:6])
		if r.coll.Unique(id) {
			return id
		}
	}
}

package repository

import (
	"strconv"
	"strings"
	"time"

	"github.com/yourorg/news-admin/internal/model"
	"github.com/yourorg/news-admin/internal/storage"

	"go.uber.org/zap"
)

// NewsRepository owns the persistent news collection
type NewsRepository struct {
	coll   *Collection[model.NewsItem]
	logger *zap.Logger
}

// NewNewsRepository creates a new NewsRepository backed by the given storage
func NewNewsRepository(store storage.Storage, logger *zap.Logger) *NewsRepository {
	coll := NewCollection(storage.KeyNewsItems, store, SeedNewsItems(),
		func(n model.NewsItem) string { return n.ID }, logger)

	return &NewsRepository{
		coll:   coll,
		logger: logger,
	}
}

// Create assigns a fresh id and timestamps, prepends the record and returns it
func (r *NewsRepository) Create(draft model.NewsCreate) model.NewsItem {
	now := time.Now().UTC()

	item := model.NewsItem{
		ID:        r.nextID(now),
		Title:     draft.Title,
		Content:   draft.Content,
		Category:  draft.Category,
		Image:     draft.Image,
		Audio:     draft.Audio,
		Video:     draft.Video,
		Keywords:  append([]string(nil), draft.Keywords...),
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.coll.Insert(item)
	return item
}

// Update merges non-nil patch fields over the record and refreshes updatedAt.
// The id and createdAt are immutable. An absent id is a no-op.
func (r *NewsRepository) Update(id string, patch model.NewsUpdate) bool {
	return r.coll.Apply(id, func(n *model.NewsItem) {
		if patch.Title != nil {
			n.Title = *patch.Title
		}
		if patch.Content != nil {
			n.Content = *patch.Content
		}
		if patch.Category != nil {
			n.Category = *patch.Category
		}
		if patch.Image != nil {
			n.Image = *patch.Image
		}
		if patch.Audio != nil {
			n.Audio = *patch.Audio
		}
		if patch.Video != nil {
			n.Video = *patch.Video
		}
		if patch.Keywords != nil {
			n.Keywords = append([]string(nil), patch.Keywords...)
		}
		n.UpdatedAt = time.Now().UTC()
	})
}

// Delete hard-removes the record; an absent id is a no-op
func (r *NewsRepository) Delete(id string) bool {
	return r.coll.Remove(id)
}

// Get returns the record with the given id
func (r *NewsRepository) Get(id string) (model.NewsItem, bool) {
	return r.coll.Find(id)
}

// List returns a snapshot of the collection, most recently created first
func (r *NewsRepository) List() []model.NewsItem {
	return r.coll.Items()
}

// Len returns the current collection size
func (r *NewsRepository) Len() int {
	return r.coll.Len()
}

// nextID derives a NEWS-<base36 timestamp> id, bumping the timestamp until
// the id has never been issued in this session
func (r *NewsRepository) nextID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := "NEWS-" + strings.ToUpper(strconv.FormatInt(ms, 36))
		if r.coll.Unique(id) {
			return id
		}
		ms++
	}
}

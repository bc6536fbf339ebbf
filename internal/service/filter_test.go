package service

import (
	"testing"

	"github.com/yourorg/news-admin/internal/model"
	"github.com/yourorg/news-admin/internal/repository"
	"github.com/yourorg/news-admin/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterNews(t *testing.T) {
	items := repository.SeedNewsItems()

	tests := []struct {
		name     string
		term     string
		category string
		wantIDs  []string
	}{
		{
			name:     "empty term and sentinel category match everything",
			term:     "",
			category: CategoryAll,
			wantIDs:  []string{"NEWS-1MF93K", "NEWS-2AB7CD", "NEWS-3DE98F", "NEWS-4GH12J", "NEWS-5KL75M"},
		},
		{
			name:     "term matches title case-insensitively",
			term:     "climate",
			category: CategoryAll,
			wantIDs:  []string{"NEWS-2AB7CD"},
		},
		{
			name:     "term matches keywords",
			term:     "machine learning",
			category: CategoryAll,
			wantIDs:  []string{"NEWS-1MF93K"},
		},
		{
			name:     "keyword match spans multiple items",
			term:     "technology",
			category: CategoryAll,
			wantIDs:  []string{"NEWS-1MF93K", "NEWS-4GH12J"},
		},
		{
			name:     "category is an exact match",
			term:     "",
			category: "Business",
			wantIDs:  []string{"NEWS-3DE98F"},
		},
		{
			name:     "term and category combine",
			term:     "technology",
			category: "Science",
			wantIDs:  []string{"NEWS-4GH12J"},
		},
		{
			name:     "no matches",
			term:     "zebra",
			category: CategoryAll,
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterNews(items, tt.term, tt.category)

			ids := make([]string, 0, len(got))
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterNewsIsIdempotent(t *testing.T) {
	items := repository.SeedNewsItems()

	once := FilterNews(items, "technology", CategoryAll)
	twice := FilterNews(once, "technology", CategoryAll)
	assert.Equal(t, once, twice)
}

func TestFilterNewsDoesNotMutateInput(t *testing.T) {
	items := repository.SeedNewsItems()
	FilterNews(items, "climate", "Politics")
	assert.Equal(t, repository.SeedNewsItems(), items)
}

func TestFilterUsers(t *testing.T) {
	users := repository.SeedUsers()

	tests := []struct {
		name    string
		term    string
		wantLen int
	}{
		{name: "empty term matches everyone", term: "", wantLen: 10},
		{name: "matches name", term: "john doe", wantLen: 1},
		{name: "matches email", term: "jane.smith@", wantLen: 1},
		{name: "matches mobile", term: "987-6543", wantLen: 1},
		{name: "matches location", term: "usa", wantLen: 10},
		{name: "matches role", term: "admin", wantLen: 2},
		{name: "no matches", term: "nobody", wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterUsers(users, tt.term), tt.wantLen)
		})
	}
}

func TestSortUsers(t *testing.T) {
	users := []model.User{
		{ID: "USER-1", Name: "charlie", Email: "c@example.com"},
		{ID: "USER-2", Name: "Alice", Email: "a@example.com"},
		{ID: "USER-3", Name: "bob", Email: "b@example.com"},
	}

	sorted := SortUsers(users, "name", utils.SortAsc)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Alice", sorted[0].Name)
	assert.Equal(t, "bob", sorted[1].Name)
	assert.Equal(t, "charlie", sorted[2].Name)

	reversed := SortUsers(users, "name", utils.SortDesc)
	assert.Equal(t, "charlie", reversed[0].Name)
	assert.Equal(t, "Alice", reversed[2].Name)
}

func TestSortUsersEmptyFieldPreservesOrder(t *testing.T) {
	users := repository.SeedUsers()

	assert.Equal(t, users, SortUsers(users, "", utils.SortAsc))
	assert.Equal(t, users, SortUsers(users, "unknown_field", utils.SortDesc))
}

func TestSortUsersDoesNotMutateInput(t *testing.T) {
	users := []model.User{
		{ID: "USER-1", Name: "zoe"},
		{ID: "USER-2", Name: "amy"},
	}

	SortUsers(users, "name", utils.SortAsc)
	assert.Equal(t, "zoe", users[0].Name)
}

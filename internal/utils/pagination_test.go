package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name         string
		page         int
		itemsPerPage int
		want         []int
	}{
		{
			name:         "first page",
			page:         1,
			itemsPerPage: 3,
			want:         []int{1, 2, 3},
		},
		{
			name:         "middle page",
			page:         2,
			itemsPerPage: 3,
			want:         []int{4, 5, 6},
		},
		{
			name:         "partial last page",
			page:         3,
			itemsPerPage: 3,
			want:         []int{7},
		},
		{
			name:         "page beyond range yields empty slice",
			page:         4,
			itemsPerPage: 3,
			want:         []int{},
		},
		{
			name:         "page smaller than one yields empty slice",
			page:         0,
			itemsPerPage: 3,
			want:         []int{},
		},
		{
			name:         "page size larger than collection",
			page:         1,
			itemsPerPage: 50,
			want:         []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:         "invalid page size yields empty slice",
			page:         1,
			itemsPerPage: 0,
			want:         []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(items, tt.page, tt.itemsPerPage))
		})
	}
}

func TestPaginateFirstPageLength(t *testing.T) {
	items := []string{"a", "b", "c"}

	// page 1 of size N holds min(N, len(items)) records
	assert.Len(t, Paginate(items, 1, 2), 2)
	assert.Len(t, Paginate(items, 1, 10), 3)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name         string
		totalItems   int
		itemsPerPage int
		want         int
	}{
		{name: "empty collection has zero pages", totalItems: 0, itemsPerPage: 10, want: 0},
		{name: "exact division", totalItems: 20, itemsPerPage: 10, want: 2},
		{name: "remainder adds a page", totalItems: 21, itemsPerPage: 10, want: 3},
		{name: "fewer items than one page", totalItems: 3, itemsPerPage: 10, want: 1},
		{name: "invalid page size", totalItems: 5, itemsPerPage: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.totalItems, tt.itemsPerPage))
		})
	}
}

func TestNormalizeSortDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		want      string
	}{
		{name: "asc passes through", direction: "asc", want: SortAsc},
		{name: "desc passes through", direction: "desc", want: SortDesc},
		{name: "uppercase is normalized", direction: "DESC", want: SortDesc},
		{name: "unknown defaults to asc", direction: "sideways", want: SortAsc},
		{name: "empty defaults to asc", direction: "", want: SortAsc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSortDirection(tt.direction))
		})
	}
}

func TestCompareInsensitive(t *testing.T) {
	assert.Negative(t, CompareInsensitive("alice", "Bob"))
	assert.Positive(t, CompareInsensitive("Charlie", "bob"))
	assert.Zero(t, CompareInsensitive("ADMIN", "admin"))
}

package utils

import "strings"

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// NormalizeSortDirection normalizes a sort direction to "asc" or "desc"
func NormalizeSortDirection(direction string) string {
	direction = strings.ToLower(direction)
	if direction != SortAsc && direction != SortDesc {
		return SortAsc // Default to ascending
	}
	return direction
}

// CompareInsensitive compares two strings case-insensitively, returning a
// negative, zero or positive value in the usual comparator convention
func CompareInsensitive(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

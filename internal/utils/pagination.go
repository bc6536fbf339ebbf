package utils

// Paginate slices items to the 1-based page of the given size. A page beyond
// the available range yields an empty slice rather than clamping.
func Paginate[T any](items []T, page, itemsPerPage int) []T {
	if page < 1 || itemsPerPage < 1 {
		return []T{}
	}

	start := (page - 1) * itemsPerPage
	if start >= len(items) {
		return []T{}
	}

	end := start + itemsPerPage
	if end > len(items) {
		end = len(items)
	}

	return append([]T(nil), items[start:end]...)
}

// TotalPages calculates the total number of pages based on total items and
// page size; an empty collection has zero pages
func TotalPages(totalItems, itemsPerPage int) int {
	if itemsPerPage < 1 || totalItems < 1 {
		return 0
	}
	return (totalItems + itemsPerPage - 1) / itemsPerPage
}

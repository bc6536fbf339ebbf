package service

import (
	"sort"
	"strings"

	"github.com/yourorg/news-admin/internal/model"
	"github.com/yourorg/news-admin/internal/utils"
)

// CategoryAll is the sentinel category meaning "no category filter"
const CategoryAll = "all"

// FilterNews returns the news items whose title or any keyword contains the
// search term (case-insensitive) and whose category matches the selected one.
// An empty term matches everything; CategoryAll disables the category filter.
func FilterNews(items []model.NewsItem, term, category string) []model.NewsItem {
	term = strings.ToLower(term)

	filtered := make([]model.NewsItem, 0, len(items))
	for _, item := range items {
		if category != CategoryAll && item.Category != category {
			continue
		}
		if term != "" && !newsMatches(item, term) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

func newsMatches(item model.NewsItem, term string) bool {
	if strings.Contains(strings.ToLower(item.Title), term) {
		return true
	}
	for _, keyword := range item.Keywords {
		if strings.Contains(strings.ToLower(keyword), term) {
			return true
		}
	}
	return false
}

// FilterUsers returns the users matching the search term across name, email,
// mobile, location and role (case-insensitive substring). An empty term
// matches everything.
func FilterUsers(users []model.User, term string) []model.User {
	term = strings.ToLower(term)

	filtered := make([]model.User, 0, len(users))
	for _, user := range users {
		if term != "" && !userMatches(user, term) {
			continue
		}
		filtered = append(filtered, user)
	}

	return filtered
}

func userMatches(user model.User, term string) bool {
	for _, field := range []string{user.Name, user.Email, user.Mobile, user.Location, user.Role} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// SortUsers returns a sorted copy of users by the given field and direction.
// String fields compare case-insensitively; an empty or unknown field
// preserves the input order.
func SortUsers(users []model.User, field, direction string) []model.User {
	sorted := append([]model.User(nil), users...)
	if field == "" {
		return sorted
	}

	less := userLess(field)
	if less == nil {
		return sorted
	}

	descending := utils.NormalizeSortDirection(direction) == utils.SortDesc
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

func userLess(field string) func(a, b model.User) bool {
	byString := func(get func(model.User) string) func(a, b model.User) bool {
		return func(a, b model.User) bool {
			return utils.CompareInsensitive(get(a), get(b)) < 0
		}
	}

	switch field {
	case "name":
		return byString(func(u model.User) string { return u.Name })
	case "email":
		return byString(func(u model.User) string { return u.Email })
	case "mobile":
		return byString(func(u model.User) string { return u.Mobile })
	case "location":
		return byString(func(u model.User) string { return u.Location })
	case "role":
		return byString(func(u model.User) string { return u.Role })
	case "status":
		return byString(func(u model.User) string { return u.Status })
	case "createdAt":
		return func(a, b model.User) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updatedAt":
		return func(a, b model.User) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return nil
	}
}

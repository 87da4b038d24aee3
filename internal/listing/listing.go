// Package listing composes the filter, sort and pagination pipeline
// applied to normalized record collections before rendering.
package listing

import (
	"strings"

	"meigu/internal/models"
)

// Fixed page sizes per listing context. These are configuration
// constants, not derived values.
const (
	ListingPageSize  = 10
	HomeActivitySize = 3
	HomeArticleSize  = 6
)

// CategoryAll is the passthrough category filter.
const CategoryAll = "all"

// Visibility is the capability that parameterizes rendering for the
// public and admin audiences instead of maintaining two near-duplicate
// pipelines.
type Visibility struct {
	ShowFee bool
}

// Page is one page view of a collection plus its pagination metadata.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int
}

// Paginate slices items into the requested page. totalPages is
// ceil(count/pageSize), 0 for an empty collection (which renders an
// empty state, not a pagination control). An out-of-range page request
// never errors; it is silently clamped into [1, totalPages].
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if len(items) == 0 || pageSize < 1 {
		return Page[T]{Items: []T{}, Page: 1, TotalPages: 0, Total: len(items)}
	}

	totalPages := (len(items) + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}

	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      len(items),
	}
}

// FilterActivities applies the category filter and then a
// case-insensitive substring search over title, content and category.
// CategoryAll (or an empty category) passes every record through.
func FilterActivities(items []models.Activity, category, search string) []models.Activity {
	out := make([]models.Activity, 0, len(items))
	term := strings.ToLower(strings.TrimSpace(search))

	for _, item := range items {
		if !categoryMatches(item.Category, category) {
			continue
		}

		if term != "" && !searchMatches(term, item.Title, item.Content, item.Category) {
			continue
		}

		out = append(out, item)
	}

	return out
}

// FilterArticles is the article counterpart of FilterActivities.
func FilterArticles(items []models.Article, category, search string) []models.Article {
	out := make([]models.Article, 0, len(items))
	term := strings.ToLower(strings.TrimSpace(search))

	for _, item := range items {
		if !categoryMatches(item.Category, category) {
			continue
		}

		if term != "" && !searchMatches(term, item.Title, item.Content, item.Category) {
			continue
		}

		out = append(out, item)
	}

	return out
}

func categoryMatches(got, want string) bool {
	if want == "" || want == CategoryAll {
		return true
	}

	return got == want
}

func searchMatches(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}

	return false
}

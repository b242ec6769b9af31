package service

import (
	"sort"

	"github.com/MKhiriev/go-personal-blog/models"
)

// SortField names an article attribute a listing may be ordered by. The set
// is a closed enumeration: anything outside it is rejected with
// ErrInvalidSortField rather than resolved dynamically.
type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByTitle     SortField = "title"
	SortBySlug      SortField = "slug"
)

// sortArticles orders articles in place by the given field.
func sortArticles(articles []models.Article, sortBy SortField, descending bool) error {
	var less func(a, b models.Article) bool

	switch sortBy {
	case SortByCreatedAt:
		less = func(a, b models.Article) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortByTitle:
		less = func(a, b models.Article) bool { return a.Title < b.Title }
	case SortBySlug:
		less = func(a, b models.Article) bool { return a.Slug < b.Slug }
	default:
		return ErrInvalidSortField
	}

	sort.SliceStable(articles, func(i, j int) bool {
		if descending {
			return less(articles[j], articles[i])
		}
		return less(articles[i], articles[j])
	})

	return nil
}

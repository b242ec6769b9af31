package service

import (
	"context"

	"github.com/MKhiriev/go-personal-blog/models"
)

// CreateArticleInput carries the raw admin form values for a new article.
// Tags is the comma-separated value as typed by the admin; the service
// splits and normalizes it.
type CreateArticleInput struct {
	Slug    string
	Title   string
	Excerpt string
	Content string
	Tags    string
}

// ArticleService implements the admin and reader use cases on top of the
// article repository and validation.
type ArticleService interface {
	// Create validates the input, rejects duplicate slugs and persists a
	// new unpublished article.
	Create(ctx context.Context, input CreateArticleInput) (models.Article, error)

	// Get returns the article for slug.
	Get(ctx context.Context, slug string) (models.Article, error)

	// Publish sets published=true via load-mutate-save.
	Publish(ctx context.Context, slug string) (models.Article, error)

	// Unpublish sets published=false via load-mutate-save.
	Unpublish(ctx context.Context, slug string) (models.Article, error)

	// Delete removes the article and its backing file.
	Delete(ctx context.Context, slug string) error

	// List returns every article sorted by the given field.
	List(ctx context.Context, sortBy SortField, descending bool) ([]models.Article, error)

	// ListPublished returns published articles sorted by the given field.
	ListPublished(ctx context.Context, sortBy SortField, descending bool) ([]models.Article, error)
}

// AuthService verifies the admin credential.
type AuthService interface {
	// VerifyAdminPassword checks plaintext against the configured
	// credential hash. Returns ErrNoCredentialConfigured when no hash is
	// configured and ErrWrongPassword when verification fails.
	VerifyAdminPassword(ctx context.Context, plaintext string) error
}

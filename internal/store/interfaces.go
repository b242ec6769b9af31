package store

import (
	"context"

	"github.com/MKhiriev/go-personal-blog/models"
)

// ArticleRepository is the persistence contract for article records. The
// implementation is the sole owner of the on-disk representation: one JSON
// file per slug under the configured data directory.
type ArticleRepository interface {
	// Save refreshes the record's UpdatedAt timestamp, serializes it to
	// canonical JSON and atomically writes it to <dir>/<slug>.json.
	Save(ctx context.Context, article *models.Article) error

	// Load reads and parses the record for slug. Returns ErrArticleNotFound
	// if no file exists, or ErrInvalidRecord if the file cannot be parsed
	// or fails record validation.
	Load(ctx context.Context, slug string) (models.Article, error)

	// Delete removes the backing file for slug. Returns ErrArticleNotFound
	// if no file exists.
	Delete(ctx context.Context, slug string) error

	// ListAll returns every parseable record in ascending slug order.
	// Files that fail to parse or validate are skipped, not reported.
	ListAll(ctx context.Context) ([]models.Article, error)

	// ListPublished returns ListAll filtered to published records.
	ListPublished(ctx context.Context) ([]models.Article, error)
}

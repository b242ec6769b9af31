package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/models"
)

// articleRepository is the file-backed implementation of [ArticleRepository].
// The slug is both primary key and filename stem, so directory enumeration
// doubles as the index; no separate index file is maintained.
//
// Concurrent writers to the same slug are not coordinated beyond the
// atomicity of the single file replace: the classic lost-update race between
// two load-mutate-save cycles is an accepted limitation.
type articleRepository struct {
	dir    string
	logger *logger.Logger
}

// NewArticleRepository constructs an [ArticleRepository] persisting records
// under dir, one <slug>.json file per article.
func NewArticleRepository(dir string, logger *logger.Logger) ArticleRepository {
	logger.Debug().Str("dir", dir).Msg("creating article repository")
	return &articleRepository{
		dir:    dir,
		logger: logger,
	}
}

// recordExt is the filename extension of every article record.
const recordExt = ".json"

func (r *articleRepository) path(slug string) string {
	return filepath.Join(r.dir, slug+recordExt)
}

// Save implements [ArticleRepository]. UpdatedAt is refreshed to the current
// UTC time before serialization; CreatedAt is never touched here.
func (r *articleRepository) Save(ctx context.Context, article *models.Article) error {
	article.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(article, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling article %q: %w", article.Slug, err)
	}

	if err := atomicWriteFile(r.path(article.Slug), data); err != nil {
		return fmt.Errorf("saving article %q: %w", article.Slug, err)
	}

	return nil
}

// Load implements [ArticleRepository].
func (r *articleRepository) Load(ctx context.Context, slug string) (models.Article, error) {
	return r.readRecord(r.path(slug))
}

// Delete implements [ArticleRepository].
func (r *articleRepository) Delete(ctx context.Context, slug string) error {
	if err := os.Remove(r.path(slug)); err != nil {
		if os.IsNotExist(err) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("deleting article %q: %w", slug, err)
	}

	return nil
}

// ListAll implements [ArticleRepository]. A record that fails to parse or
// validate is logged at debug level and omitted; a corrupt file never aborts
// the listing. A missing data directory yields an empty result.
func (r *articleRepository) ListAll(ctx context.Context) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Article{}, nil
		}
		return nil, fmt.Errorf("listing articles in %s: %w", r.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	articles := make([]models.Article, 0, len(names))
	for _, name := range names {
		article, err := r.readRecord(filepath.Join(r.dir, name))
		if err != nil {
			log.Debug().Err(err).Str("file", name).Msg("skipping unreadable article record")
			continue
		}
		articles = append(articles, article)
	}

	return articles, nil
}

// ListPublished implements [ArticleRepository].
func (r *articleRepository) ListPublished(ctx context.Context) ([]models.Article, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]models.Article, 0, len(all))
	for _, article := range all {
		if article.Published {
			published = append(published, article)
		}
	}

	return published, nil
}

// readRecord reads, parses and validates a single record file.
func (r *articleRepository) readRecord(path string) (models.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Article{}, ErrArticleNotFound
		}
		return models.Article{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var article models.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return models.Article{}, fmt.Errorf("%w: decoding %s: %w", ErrInvalidRecord, path, err)
	}

	if err := validateRecord(&article); err != nil {
		return models.Article{}, err
	}

	return article, nil
}

// validateRecord enforces the required-field invariant on a freshly decoded
// record and backfills optional fields the way hand-edited files tend to
// omit them: zero timestamps default to now, a nil tag list becomes empty.
func validateRecord(article *models.Article) error {
	required := map[string]string{
		"slug":    article.Slug,
		"title":   article.Title,
		"excerpt": article.Excerpt,
		"content": article.Content,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: missing required field: %s", ErrInvalidRecord, field)
		}
	}

	now := time.Now().UTC()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	if article.UpdatedAt.IsZero() {
		article.UpdatedAt = now
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	return nil
}

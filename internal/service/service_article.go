package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/internal/store"
	"github.com/MKhiriev/go-personal-blog/internal/validators"
	"github.com/MKhiriev/go-personal-blog/models"
)

// articleService is the concrete implementation of ArticleService. It
// composes the article validator and the file-backed repository; it holds no
// state of its own and is safe for concurrent use.
type articleService struct {
	repository store.ArticleRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewArticleService constructs an ArticleService wired to the given
// repository and validator.
func NewArticleService(repository store.ArticleRepository, validator validators.Validator, logger *logger.Logger) ArticleService {
	logger.Debug().Msg("creating article service")
	return &articleService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

// Create implements [ArticleService].
//
// Field trimming and tag normalization happen before validation so that the
// stored record is canonical. Any existing record file for the slug —
// including a corrupt one — blocks creation: the slug is taken either way.
func (s *articleService) Create(ctx context.Context, input CreateArticleInput) (models.Article, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	article := models.Article{
		Slug:      strings.TrimSpace(input.Slug),
		Title:     strings.TrimSpace(input.Title),
		Excerpt:   strings.TrimSpace(input.Excerpt),
		Content:   strings.TrimSpace(input.Content),
		Tags:      validators.NormalizeTags(splitTags(input.Tags)),
		Published: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.validator.Validate(ctx, article); err != nil {
		log.Err(err).Str("slug", input.Slug).Msg("article creation rejected by validation")
		return models.Article{}, err
	}

	_, err := s.repository.Load(ctx, article.Slug)
	switch {
	case err == nil, errors.Is(err, store.ErrInvalidRecord):
		log.Error().Str("slug", article.Slug).Msg("article creation rejected: slug taken")
		return models.Article{}, ErrSlugAlreadyExists
	case errors.Is(err, store.ErrArticleNotFound):
		// slug is free
	default:
		return models.Article{}, fmt.Errorf("checking slug %q: %w", article.Slug, err)
	}

	if err := s.repository.Save(ctx, &article); err != nil {
		log.Err(err).Str("slug", article.Slug).Msg("article creation failed on save")
		return models.Article{}, fmt.Errorf("creating article %q: %w", article.Slug, err)
	}

	return article, nil
}

// Get implements [ArticleService].
func (s *articleService) Get(ctx context.Context, slug string) (models.Article, error) {
	return s.repository.Load(ctx, slug)
}

// Publish implements [ArticleService].
func (s *articleService) Publish(ctx context.Context, slug string) (models.Article, error) {
	return s.setPublished(ctx, slug, true)
}

// Unpublish implements [ArticleService].
func (s *articleService) Unpublish(ctx context.Context, slug string) (models.Article, error) {
	return s.setPublished(ctx, slug, false)
}

// setPublished runs the load-mutate-save cycle for the published flag.
// Two concurrent cycles on the same slug race as last-writer-wins; the store
// guarantees each individual write is all-or-nothing but nothing more.
func (s *articleService) setPublished(ctx context.Context, slug string, published bool) (models.Article, error) {
	log := logger.FromContext(ctx)

	article, err := s.repository.Load(ctx, slug)
	if err != nil {
		return models.Article{}, err
	}

	article.Published = published
	if err := s.repository.Save(ctx, &article); err != nil {
		log.Err(err).Str("slug", slug).Bool("published", published).Msg("publish state change failed on save")
		return models.Article{}, fmt.Errorf("updating publish state of %q: %w", slug, err)
	}

	return article, nil
}

// Delete implements [ArticleService].
func (s *articleService) Delete(ctx context.Context, slug string) error {
	return s.repository.Delete(ctx, slug)
}

// List implements [ArticleService].
func (s *articleService) List(ctx context.Context, sortBy SortField, descending bool) ([]models.Article, error) {
	articles, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := sortArticles(articles, sortBy, descending); err != nil {
		return nil, err
	}

	return articles, nil
}

// ListPublished implements [ArticleService].
func (s *articleService) ListPublished(ctx context.Context, sortBy SortField, descending bool) ([]models.Article, error) {
	articles, err := s.repository.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	if err := sortArticles(articles, sortBy, descending); err != nil {
		return nil, err
	}

	return articles, nil
}

// splitTags breaks the comma-separated admin form value into raw tag
// candidates. Normalization is left to validators.NormalizeTags.
func splitTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return strings.Split(csv, ",")
}

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/models"
)

func newTestRepository(t *testing.T) (ArticleRepository, string) {
	t.Helper()

	dir := t.TempDir()
	return NewArticleRepository(dir, logger.Nop()), dir
}

func testArticle(slug string) *models.Article {
	now := time.Now().UTC()
	return &models.Article{
		Slug:      slug,
		Title:     "Title of " + slug,
		Excerpt:   "An excerpt",
		Content:   "Full content body",
		Tags:      []string{"go", "testing"},
		Published: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ─────────────────────────────────────────────
// Save / Load round-trip
// ─────────────────────────────────────────────

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	article := testArticle("hello-world")
	before := article.UpdatedAt

	require.NoError(t, repo.Save(ctx, article))

	loaded, err := repo.Load(ctx, "hello-world")
	require.NoError(t, err)

	assert.Equal(t, article.Slug, loaded.Slug)
	assert.Equal(t, article.Title, loaded.Title)
	assert.Equal(t, article.Excerpt, loaded.Excerpt)
	assert.Equal(t, article.Content, loaded.Content)
	assert.Equal(t, article.Tags, loaded.Tags)
	assert.Equal(t, article.Published, loaded.Published)
	assert.True(t, loaded.CreatedAt.Equal(article.CreatedAt))
	assert.False(t, loaded.UpdatedAt.Before(before), "UpdatedAt must be refreshed on save")
}

func TestSave_WritesCanonicalJSON(t *testing.T) {
	repo, dir := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testArticle("canonical")))

	data, err := os.ReadFile(filepath.Join(dir, "canonical.json"))
	require.NoError(t, err)

	// human-readable formatting with the stable key set
	assert.Contains(t, string(data), "\n  \"slug\": \"canonical\"")
	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))
	for _, key := range []string{"slug", "title", "excerpt", "content", "tags", "published", "created_at", "updated_at"} {
		assert.Contains(t, keys, key)
	}
}

func TestSave_DoesNotTouchCreatedAt(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	article := testArticle("created-once")
	created := article.CreatedAt

	require.NoError(t, repo.Save(ctx, article))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, repo.Save(ctx, article))

	loaded, err := repo.Load(ctx, "created-once")
	require.NoError(t, err)
	assert.True(t, loaded.CreatedAt.Equal(created))
	assert.True(t, loaded.UpdatedAt.After(created))
}

// ─────────────────────────────────────────────
// Load failures
// ─────────────────────────────────────────────

func TestLoad_MissingSlug(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Load(context.Background(), "no-such-article")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestLoad_MalformedJSON(t *testing.T) {
	repo, dir := newTestRepository(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	_, err := repo.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
	}{
		{name: "empty title", record: map[string]any{"slug": "x", "title": "  ", "excerpt": "e", "content": "c"}},
		{name: "absent content", record: map[string]any{"slug": "x", "title": "t", "excerpt": "e"}},
		{name: "absent slug", record: map[string]any{"title": "t", "excerpt": "e", "content": "c"}},
		{name: "absent excerpt", record: map[string]any{"slug": "x", "title": "t", "content": "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, dir := newTestRepository(t)
			data, err := json.Marshal(tt.record)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "x.json"), data, 0o644))

			_, err = repo.Load(context.Background(), "x")
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestLoad_BackfillsOptionalFields(t *testing.T) {
	repo, dir := newTestRepository(t)
	record := map[string]any{"slug": "bare", "title": "t", "excerpt": "e", "content": "c"}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bare.json"), data, 0o644))

	loaded, err := repo.Load(context.Background(), "bare")
	require.NoError(t, err)

	assert.NotNil(t, loaded.Tags)
	assert.Empty(t, loaded.Tags)
	assert.False(t, loaded.Published)
	assert.False(t, loaded.CreatedAt.IsZero())
	assert.False(t, loaded.UpdatedAt.IsZero())
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestDelete_RemovesBackingFile(t *testing.T) {
	repo, dir := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testArticle("doomed")))
	require.NoError(t, repo.Delete(ctx, "doomed"))

	_, err := os.Stat(filepath.Join(dir, "doomed.json"))
	assert.True(t, os.IsNotExist(err))

	_, err = repo.Load(ctx, "doomed")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestDelete_MissingSlugLeavesDirectoryUnchanged(t *testing.T) {
	repo, dir := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testArticle("survivor")))

	err := repo.Delete(ctx, "ghost")
	assert.ErrorIs(t, err, ErrArticleNotFound)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "survivor.json", entries[0].Name())
}

// ─────────────────────────────────────────────
// Listing
// ─────────────────────────────────────────────

func TestListAll_AscendingSlugOrder(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	for _, slug := range []string{"zebra", "alpha", "middle"} {
		require.NoError(t, repo.Save(ctx, testArticle(slug)))
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Slug)
	assert.Equal(t, "middle", all[1].Slug)
	assert.Equal(t, "zebra", all[2].Slug)
}

func TestListAll_SkipsCorruptRecords(t *testing.T) {
	repo, dir := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testArticle("good-one")))
	require.NoError(t, repo.Save(ctx, testArticle("good-two")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.json"), []byte("{{{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hollow.json"), []byte(`{"slug":"hollow"}`), 0o644))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "good-one", all[0].Slug)
	assert.Equal(t, "good-two", all[1].Slug)
}

func TestListAll_IgnoresForeignFiles(t *testing.T) {
	repo, dir := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testArticle("only-one")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a record"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.json"), 0o755))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestListAll_MissingDirectory(t *testing.T) {
	repo := NewArticleRepository(filepath.Join(t.TempDir(), "never-created"), logger.Nop())

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListPublished_FiltersUnpublished(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	draft := testArticle("draft-post")
	require.NoError(t, repo.Save(ctx, draft))

	live := testArticle("live-post")
	live.Published = true
	require.NoError(t, repo.Save(ctx, live))

	published, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "live-post", published[0].Slug)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

package models

import "time"

// Article represents a single blog article. One article maps to exactly one
// JSON file on disk, keyed by its slug; the store layer owns the on-disk
// representation and the JSON field order below is the canonical one.
type Article struct {
	// Slug is the unique, URL-safe identifier of the article in lowercase
	// kebab-case (e.g. "hello-world"). It doubles as the filename stem of
	// the backing record and is immutable once the article is created.
	Slug string `json:"slug"`

	// Title is the human-readable headline. Must be 1–200 characters
	// after trimming.
	Title string `json:"title"`

	// Excerpt is a short teaser shown on listing pages. Stored as opaque
	// text; no markup processing is applied.
	Excerpt string `json:"excerpt"`

	// Content is the full article body. Stored as opaque text.
	Content string `json:"content"`

	// Tags is the normalized tag set: trimmed, lowercased, deduplicated
	// and sorted lexicographically.
	Tags []string `json:"tags"`

	// Published controls visibility on the public reader surface.
	// Unpublished articles are visible only in the admin dashboard.
	Published bool `json:"published"`

	// CreatedAt is set once when the article is first constructed and is
	// never changed by subsequent saves. Always UTC.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every save. Always UTC.
	UpdatedAt time.Time `json:"updated_at"`
}

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrArticleNotFound is returned when no record file exists for the
	// requested slug.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidRecord is returned when a record file exists but cannot be
	// used: the JSON is malformed, or a required field (slug, title,
	// excerpt, content) is absent or empty after trimming.
	ErrInvalidRecord = errors.New("invalid article record")
)

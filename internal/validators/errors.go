package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidSlug indicates a slug that is empty or not lowercase
	// kebab-case (letters/digits joined by single hyphens).
	ErrInvalidSlug = errors.New("invalid slug")

	// ErrInvalidTitle indicates a title whose trimmed length is outside
	// the 1–200 character range.
	ErrInvalidTitle = errors.New("invalid title")
)

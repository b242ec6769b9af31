package validators

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-personal-blog/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldSlug targets the article's kebab-case identifier.
	FieldSlug = "slug"

	// FieldTitle targets the article headline.
	FieldTitle = "title"
)

// maxTitleLength is the inclusive upper bound on the trimmed title length.
const maxTitleLength = 200

// slugPattern accepts lowercase ASCII letters/digits in segments joined by
// single hyphens: no leading, trailing, or doubled hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ArticleValidator implements the Validator interface for the Article model.
// It accepts both value and pointer forms and allows optional field-level
// scoping via variadic field name arguments.
type ArticleValidator struct {
}

// NewArticleValidator constructs a new ArticleValidator
// and returns it as the Validator interface.
func NewArticleValidator() Validator {
	return &ArticleValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.Article / *models.Article
//
// Returns ErrUnsupportedType if obj does not match a known model. Optional
// fields restrict validation to the named subset; when omitted, slug and
// title are both validated.
func (v *ArticleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Article:
		return v.validateArticle(ctx, value, fields...)
	case *models.Article:
		return v.validateArticle(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ArticleValidator) validateArticle(ctx context.Context, article models.Article, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSlug, FieldTitle}
	}

	for _, field := range fields {
		switch field {
		case FieldSlug:
			if !ValidSlug(article.Slug) {
				return ErrInvalidSlug
			}
		case FieldTitle:
			if !ValidTitle(article.Title) {
				return ErrInvalidTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidSlug reports whether s is a non-empty lowercase kebab-case
// identifier.
func ValidSlug(s string) bool {
	return s != "" && slugPattern.MatchString(s)
}

// ValidTitle reports whether the trimmed length of s lies in [1, 200].
func ValidTitle(s string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= 1 && length <= maxTitleLength
}

// NormalizeTags trims and lowercases every tag, drops empties, removes
// duplicates and returns the result sorted lexicographically. The operation
// is idempotent: normalizing an already-normalized list is a no-op.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))

	for _, tag := range tags {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}

	sort.Strings(out)
	return out
}

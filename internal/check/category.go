package check

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

var (
	// CategorySlugPattern is the slug shape of the detailed categories endpoint.
	CategorySlugPattern = regexp.MustCompile(`^[a-z-]+$`)
	// CategoryListSlugPattern is the slug shape of the category-list endpoint.
	CategoryListSlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// ValidateCategories checks detailed categories: non-empty name and url,
// slugs matching pattern with no stray hyphens, url containing the slug, and
// slugs and names pairwise unique. A nil pattern selects CategorySlugPattern.
func ValidateCategories(categories []model.Category, pattern *regexp.Regexp) error {
	if pattern == nil {
		pattern = CategorySlugPattern
	}

	v, err := newValidator()
	if err != nil {
		return fmt.Errorf("create validator: %w", err)
	}

	slugs := make(map[string]struct{}, len(categories))
	names := make(map[string]struct{}, len(categories))
	for i, c := range categories {
		if err := v.Validate(c); err != nil {
			var fieldErrs govalidator.ValidationErrors
			if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
				return fieldErrorToViolation(fmt.Sprintf("categories[%d]", i), fieldErrs[0])
			}
			return fmt.Errorf("validate category %d: %w", i, err)
		}
		if err := validateSlug(c.Slug, pattern); err != nil {
			return err
		}
		if !strings.Contains(c.URL, c.Slug) {
			return apperr.PatternMismatchErr.WithMsgf("category %q: url %q does not contain the slug", c.Slug, c.URL)
		}

		if _, dup := slugs[c.Slug]; dup {
			return apperr.DuplicateValueErr.WithMsgf("category slug %q appears more than once", c.Slug)
		}
		slugs[c.Slug] = struct{}{}

		if _, dup := names[c.Name]; dup {
			return apperr.DuplicateValueErr.WithMsgf("category name %q appears more than once", c.Name)
		}
		names[c.Name] = struct{}{}
	}

	return nil
}

// ValidateCategoryList checks the plain slug list: non-empty, unique and
// matching pattern. A nil pattern selects CategoryListSlugPattern.
func ValidateCategoryList(slugs []string, pattern *regexp.Regexp) error {
	if pattern == nil {
		pattern = CategoryListSlugPattern
	}

	seen := make(map[string]struct{}, len(slugs))
	for i, s := range slugs {
		if strings.TrimSpace(s) == "" {
			return apperr.EmptyStringErr.WithMsgf("category-list[%d] is empty", i)
		}
		if err := validateSlug(s, pattern); err != nil {
			return err
		}
		if _, dup := seen[s]; dup {
			return apperr.DuplicateValueErr.WithMsgf("category %q appears more than once", s)
		}
		seen[s] = struct{}{}
	}

	return nil
}

func validateSlug(slug string, pattern *regexp.Regexp) error {
	if !pattern.MatchString(slug) {
		return apperr.PatternMismatchErr.WithMsgf("slug %q does not match %s", slug, pattern)
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") || strings.Contains(slug, "--") {
		return apperr.PatternMismatchErr.WithMsgf("slug %q has a leading, trailing or doubled hyphen", slug)
	}
	return nil
}

package check

import (
	"strings"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

// ValidateProductMatchesSearch checks that every product contains query, case
// insensitively, somewhere in its title, description, category or brand. A
// missing brand counts as empty text.
func ValidateProductMatchesSearch(products []model.Product, query string) error {
	needle := strings.ToLower(query)
	for _, p := range products {
		if !strings.Contains(SearchableText(p), needle) {
			return apperr.QueryNotFoundErr.WithMsgf("product %d %q does not mention %q", p.ID, p.Title, query)
		}
	}
	return nil
}

// SearchableText is the lower-cased text a search query is matched against.
// Fields are joined with a space, so a query spanning two fields can match
// here even though upstream searches each field on its own.
func SearchableText(p model.Product) string {
	return strings.ToLower(strings.Join([]string{p.Title, p.Description, p.Category, p.BrandOrEmpty()}, " "))
}

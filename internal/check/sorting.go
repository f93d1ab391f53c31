package check

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

// ValidateSorted checks that products are ordered by field in order (asc or
// desc). Every product must carry field as a string or a number; strings
// compare case insensitively.
func ValidateSorted(products []Object, field, order string) error {
	if order != model.OrderAsc && order != model.OrderDesc {
		return fmt.Errorf("unknown sort order %q", order)
	}

	for i := 1; i < len(products); i++ {
		c, err := compareField(products[i-1], products[i], field)
		if err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
		if (order == model.OrderAsc && c > 0) || (order == model.OrderDesc && c < 0) {
			return apperr.OrderMismatchErr.WithMsgf("products[%d].%s=%s and products[%d].%s=%s are not %s",
				i-1, field, products[i-1][field], i, field, products[i][field], order)
		}
	}

	return nil
}

func compareField(a, b Object, field string) (int, error) {
	if sa, ok := a.StringValue(field); ok {
		sb, ok := b.StringValue(field)
		if !ok {
			return 0, requireKind(b, field, jsonString)
		}
		return cmp.Compare(strings.ToLower(sa), strings.ToLower(sb)), nil
	}
	if na, ok := a.NumberValue(field); ok {
		nb, ok := b.NumberValue(field)
		if !ok {
			return 0, requireKind(b, field, jsonNumber)
		}
		return cmp.Compare(na, nb), nil
	}
	return 0, apperr.WrongTypeErr.WithMsgf("sort field %q is neither string nor number in %v", field, a.Keys())
}

package check

import (
	"slices"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
)

// idField is returned whatever the selection asks for.
const idField = "id"

// ValidateFieldSelection checks a projected product: every included field is
// present and every excluded field is absent. id is always expected.
func ValidateFieldSelection(product Object, included, excluded []string) error {
	for _, field := range append([]string{idField}, included...) {
		if !product.Has(field) {
			return apperr.ProjectionMissingErr.WithMsgf("selected field %q is missing (have %v)", field, product.Keys())
		}
	}
	for _, field := range excluded {
		if field == idField {
			continue
		}
		if product.Has(field) {
			return apperr.ProjectionExtraErr.WithMsgf("field %q was not selected but is present (have %v)", field, product.Keys())
		}
	}
	return nil
}

// ValidateExactFields checks the projection law: the key set of product is
// exactly fields plus id.
func ValidateExactFields(product Object, fields []string) error {
	want := map[string]struct{}{idField: {}}
	for _, f := range fields {
		want[f] = struct{}{}
	}

	for _, key := range product.Keys() {
		if _, ok := want[key]; !ok {
			return apperr.ProjectionExtraErr.WithMsgf("field %q was not selected but is present (selected %v)", key, fields)
		}
	}

	missing := make([]string, 0)
	for f := range want {
		if !product.Has(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return apperr.ProjectionMissingErr.WithMsgf("selected fields %v are missing (have %v)", missing, product.Keys())
	}

	return nil
}

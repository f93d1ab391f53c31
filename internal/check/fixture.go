package check

import (
	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

type fieldCheck struct {
	name      string
	got, want any
}

func compareFields(id int, checks []fieldCheck) error {
	for _, c := range checks {
		if c.got != c.want {
			return apperr.ValueMismatchErr.WithMsgf("product %d: %q is %v, fixture has %v", id, c.name, c.got, c.want)
		}
	}
	return nil
}

func coreFields(p, fixture model.Product) []fieldCheck {
	return []fieldCheck{
		{"id", p.ID, fixture.ID},
		{"title", p.Title, fixture.Title},
		{"description", p.Description, fixture.Description},
		{"price", p.Price, fixture.Price},
		{"category", p.Category, fixture.Category},
		{"stock", p.Stock, fixture.Stock},
		{"rating", p.Rating, fixture.Rating},
	}
}

// ValidateProductAgainstFixture compares a product with a recorded one. brand
// is compared only when the fixture has one.
func ValidateProductAgainstFixture(p, fixture model.Product) error {
	checks := coreFields(p, fixture)
	if fixture.Brand != nil {
		checks = append(checks, fieldCheck{"brand", p.BrandOrEmpty(), *fixture.Brand})
	}
	return compareFields(fixture.ID, checks)
}

// ValidateGroceryProductAgainstFixture is ValidateProductAgainstFixture for
// grocery items, which must carry no brand at all.
func ValidateGroceryProductAgainstFixture(p, fixture model.Product) error {
	if err := compareFields(fixture.ID, coreFields(p, fixture)); err != nil {
		return err
	}
	if p.Category == model.GroceriesCategory && p.Brand != nil {
		return apperr.UnexpectedFieldErr.WithMsgf("grocery product %d has brand %q, want none", p.ID, *p.Brand)
	}
	return nil
}

// ValidateBasicProductData compares the identifying fields of a product,
// brand included, with a recorded one.
func ValidateBasicProductData(p, fixture model.Product) error {
	return compareFields(fixture.ID, []fieldCheck{
		{"id", p.ID, fixture.ID},
		{"title", p.Title, fixture.Title},
		{"category", p.Category, fixture.Category},
		{"price", p.Price, fixture.Price},
		{"brand", p.BrandOrEmpty(), fixture.BrandOrEmpty()},
	})
}

package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/validator"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/zerror"
)

var newValidator = sync.OnceValues(func() (validator.Validator, error) {
	return validator.NewDefaultValidator()
})

// requiredProductFields is the minimal field set every product carries.
// brand is handled separately because groceries may omit it.
var requiredProductFields = []string{"id", "title", "description", "price", "category", "stock", "rating"}

// ValidateSingleProduct checks that a product carries the minimal field set.
// brand is required unless the category is groceries.
func ValidateSingleProduct(product Object) error {
	for _, key := range requiredProductFields {
		if !product.Has(key) {
			return apperr.MissingFieldErr.WithMsgf("product is missing %q (have %v)", key, product.Keys())
		}
	}
	if !isGrocery(product) && !product.Has("brand") {
		return apperr.MissingFieldErr.WithMsgf("product %s in category %s is missing \"brand\"", productLabel(product), categoryOf(product))
	}
	return nil
}

// ValidateProductsArray applies ValidateSingleProduct to every product.
func ValidateProductsArray(products []Object) error {
	for i, p := range products {
		if err := ValidateSingleProduct(p); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
	}
	return nil
}

// ValidateSingleProductResponse checks the response of a single product
// lookup: status 200, the minimal field set, reviews and meta.
func ValidateSingleProductResponse(resp model.Response) error {
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	product, err := DecodeObject(resp.Body)
	if err != nil {
		return err
	}

	if err := ValidateSingleProduct(product); err != nil {
		return err
	}
	for _, key := range []string{"reviews", "meta"} {
		if !product.Has(key) {
			return apperr.MissingFieldErr.WithMsgf("product %s is missing %q", productLabel(product), key)
		}
	}

	return ValidateContract(resp.Body, SchemaProduct)
}

// ValidateProductDataTypes checks field types and documented domains of one
// product, whichever endpoint produced it: id positive integer, price > 0,
// discountPercentage in [0,100], rating in [0,5], stock >= 0, images and tags
// arrays, and non-empty text fields. Type problems are StructuralMismatch,
// domain problems ConstraintViolation.
func ValidateProductDataTypes(product Object) error {
	if err := requireInteger(product, "id"); err != nil {
		return err
	}
	for _, key := range []string{"title", "description", "category", "thumbnail"} {
		if err := requireKind(product, key, jsonString); err != nil {
			return err
		}
	}
	for _, key := range []string{"price", "discountPercentage", "rating", "stock"} {
		if err := requireKind(product, key, jsonNumber); err != nil {
			return err
		}
	}
	for _, key := range []string{"images", "tags"} {
		if err := requireKind(product, key, jsonArray); err != nil {
			return err
		}
	}
	if !isGrocery(product) {
		if err := requireKind(product, "brand", jsonString); err != nil {
			return err
		}
	}

	p, err := decodeProductFields(product)
	if err != nil {
		return err
	}

	if err := validateProductDomain(p); err != nil {
		return err
	}

	if !isGrocery(product) && p.BrandOrEmpty() == "" {
		return apperr.EmptyStringErr.WithMsgf("product %d: \"brand\" is empty", p.ID)
	}
	if p.Thumbnail == "" {
		return apperr.EmptyStringErr.WithMsgf("product %d: \"thumbnail\" is empty", p.ID)
	}

	return nil
}

// productFields holds the product fields whose domains are checked. Nested
// metadata such as reviews, meta and dimensions stays out so it is never
// type checked.
type productFields struct {
	ID                 int     `json:"id" validate:"gt=0"`
	Title              string  `json:"title" validate:"required"`
	Description        string  `json:"description" validate:"required"`
	Category           string  `json:"category" validate:"required"`
	Price              float64 `json:"price" validate:"gt=0"`
	DiscountPercentage float64 `json:"discountPercentage" validate:"gte=0,lte=100"`
	Rating             float64 `json:"rating" validate:"gte=0,lte=5"`
	Stock              int     `json:"stock" validate:"gte=0"`
	Brand              *string `json:"brand" validate:"omitempty,min=1"`
	Thumbnail          string  `json:"thumbnail"`
}

func (p productFields) BrandOrEmpty() string {
	if p.Brand == nil {
		return ""
	}
	return *p.Brand
}

func decodeProductFields(o Object) (productFields, error) {
	var p productFields
	owned := make(Object, len(o))
	for _, key := range []string{"id", "title", "description", "category", "price", "discountPercentage", "rating", "stock", "brand", "thumbnail"} {
		if raw, ok := o[key]; ok {
			owned[key] = raw
		}
	}
	b, err := json.Marshal(owned)
	if err != nil {
		return p, apperr.BodyNotJSONErr.WithMsgf("re-encode product").WrapParent(err)
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, apperr.WrongTypeErr.WithMsgf("product %s has a field of the wrong type", abbreviate(b)).WrapParent(err)
	}
	return p, nil
}

func validateProductDomain(p productFields) error {
	v, err := newValidator()
	if err != nil {
		return fmt.Errorf("create validator: %w", err)
	}

	err = v.Validate(p)
	if err == nil {
		return nil
	}

	var fieldErrs govalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate product %d: %w", p.ID, err)
	}

	return fieldErrorToViolation(fmt.Sprintf("product %d", p.ID), fieldErrs[0])
}

// fieldErrorToViolation turns the first failed struct tag into a violation.
func fieldErrorToViolation(subject string, fe govalidator.FieldError) zerror.ZError {
	tmpl := apperr.OutOfRangeErr
	switch fe.Tag() {
	case "required", "min":
		tmpl = apperr.EmptyStringErr
	case "slug", "url":
		tmpl = apperr.PatternMismatchErr
	}
	return tmpl.WithMsgf("%s: %q=%v %s", subject, fe.Field(), fe.Value(), validator.ValidationErrorMessage(fe))
}

func isGrocery(product Object) bool {
	return categoryOf(product) == model.GroceriesCategory
}

func categoryOf(product Object) string {
	c, _ := product.StringValue("category")
	return c
}

func productLabel(product Object) string {
	if raw, ok := product["id"]; ok {
		return string(raw)
	}
	return "<no id>"
}

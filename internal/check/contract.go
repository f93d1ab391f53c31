package check

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	apicontract "github.com/tuanvumaihuynh/catalog-e2e/api-contract"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
)

// Schema names in the embedded catalog contract.
const (
	SchemaProductsResponse = "ProductsResponse"
	SchemaProduct          = "Product"
	SchemaProductSummary   = "ProductSummary"
	SchemaCreatedProduct   = "CreatedProduct"
	SchemaDeletedProduct   = "DeletedProduct"
	SchemaCategories       = "Categories"
	SchemaCategoryList     = "CategoryList"
	SchemaErrorResponse    = "ErrorResponse"
)

var loadContract = sync.OnceValues(func() (*openapi3.T, error) {
	return apicontract.Load(context.Background())
})

// ValidateContract checks body against a named schema of the catalog
// contract. Any mismatch is a StructuralMismatch.
func ValidateContract(body []byte, schema string) error {
	doc, err := loadContract()
	if err != nil {
		return fmt.Errorf("load contract: %w", err)
	}

	ref, ok := doc.Components.Schemas[schema]
	if !ok || ref.Value == nil {
		return fmt.Errorf("unknown contract schema %q", schema)
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return apperr.BodyNotJSONErr.WithMsgf("body %s is not JSON", abbreviate(body)).WrapParent(err)
	}

	if err := ref.Value.VisitJSON(v); err != nil {
		return apperr.ContractMismatchErr.WithMsgf("body does not satisfy %s", schema).WrapParent(err)
	}

	return nil
}

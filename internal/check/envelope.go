package check

import (
	"net/http"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

var envelopeKeys = map[string]jsonKind{
	"products": jsonArray,
	"total":    jsonNumber,
	"skip":     jsonNumber,
	"limit":    jsonNumber,
}

// ValidateProductResponse checks the listing envelope: status 200 and a body
// with exactly the keys products (array), total, skip and limit (numbers).
func ValidateProductResponse(resp model.Response) error {
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	body, err := DecodeObject(resp.Body)
	if err != nil {
		return err
	}

	for _, key := range []string{"products", "total", "skip", "limit"} {
		if err := requireKind(body, key, envelopeKeys[key]); err != nil {
			return err
		}
	}
	for _, key := range body.Keys() {
		if _, ok := envelopeKeys[key]; !ok {
			return apperr.UnexpectedFieldErr.WithMsgf("listing envelope has extra key %q", key)
		}
	}

	return ValidateContract(resp.Body, SchemaProductsResponse)
}

// ValidateSearchResponse checks a search result. Search shares the listing
// envelope contract.
func ValidateSearchResponse(resp model.Response) error {
	return ValidateProductResponse(resp)
}

func expectStatus(resp model.Response, want int) error {
	if resp.Status != want {
		return apperr.UnexpectedStatusErr.WithMsgf("status %d, want %d (body %s)", resp.Status, want, abbreviate(resp.Body))
	}
	return nil
}

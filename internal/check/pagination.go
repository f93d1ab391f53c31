package check

import (
	"strings"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

// ValidatePagination checks that the envelope echoes the requested limit and
// skip and that the page is full. Use it only when the catalog holds at least
// skip+limit matching records. A limit of 0 asks for every record from skip
// on, and upstream then echoes the page length as limit.
func ValidatePagination(resp model.Response, limit, skip int) error {
	page, err := DecodeBody[Page](resp)
	if err != nil {
		return err
	}

	want := limit
	if limit == 0 {
		want = max(page.Total-skip, 0)
	}

	if page.Limit != want {
		return apperr.ValueMismatchErr.WithMsgf("limit is %d, want %d", page.Limit, want)
	}
	if page.Skip != skip {
		return apperr.ValueMismatchErr.WithMsgf("skip is %d, want %d", page.Skip, skip)
	}
	if len(page.Products) != want {
		return apperr.PageSizeMismatchErr.WithMsgf("page holds %d products, want %d", len(page.Products), want)
	}

	return nil
}

// ValidatePageWindow checks the page size law against the envelope's own
// numbers: len(products) == min(limit, total-skip) when limit > 0, and
// len(products) == total-skip when limit == 0. total-skip is clamped at 0.
func ValidatePageWindow(resp model.Response) error {
	page, err := DecodeBody[Page](resp)
	if err != nil {
		return err
	}

	want := max(page.Total-page.Skip, 0)
	if page.Limit > 0 {
		want = min(page.Limit, want)
	}
	if len(page.Products) != want {
		return apperr.PageSizeMismatchErr.WithMsgf(
			"page holds %d products, want %d (total=%d skip=%d limit=%d)",
			len(page.Products), want, page.Total, page.Skip, page.Limit)
	}

	return nil
}

// ValidateErrorResponse checks a rejected request: the status equals status
// and the message contains substring. Messages are matched by substring
// because upstream wording drifts.
func ValidateErrorResponse(resp model.Response, status int, substring string) error {
	if err := expectStatus(resp, status); err != nil {
		return err
	}

	if err := ValidateContract(resp.Body, SchemaErrorResponse); err != nil {
		return err
	}

	body, err := DecodeBody[model.ErrorResponse](resp)
	if err != nil {
		return err
	}
	if !strings.Contains(body.Message, substring) {
		return apperr.ValueMismatchErr.WithMsgf("error message %q does not contain %q", body.Message, substring)
	}

	return nil
}

// ValidatePaginationAgainstFixture checks total, skip and limit against a
// recorded envelope.
func ValidatePaginationAgainstFixture(resp model.Response, fixture model.ProductsResponse) error {
	page, err := DecodeBody[Page](resp)
	if err != nil {
		return err
	}

	switch {
	case page.Total != fixture.Total:
		return apperr.ValueMismatchErr.WithMsgf("total is %d, fixture has %d", page.Total, fixture.Total)
	case page.Skip != fixture.Skip:
		return apperr.ValueMismatchErr.WithMsgf("skip is %d, fixture has %d", page.Skip, fixture.Skip)
	case page.Limit != fixture.Limit:
		return apperr.ValueMismatchErr.WithMsgf("limit is %d, fixture has %d", page.Limit, fixture.Limit)
	}

	return nil
}

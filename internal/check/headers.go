package check

import (
	"strings"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

// ValidateHeader checks that header name is present and contains substring,
// case insensitively.
func ValidateHeader(resp model.Response, name, substring string) error {
	value := resp.Headers.Get(name)
	if value == "" {
		return apperr.MissingFieldErr.WithMsgf("header %q is missing", name)
	}
	if !strings.Contains(strings.ToLower(value), strings.ToLower(substring)) {
		return apperr.ValueMismatchErr.WithMsgf("header %q is %q, want it to contain %q", name, value, substring)
	}
	return nil
}

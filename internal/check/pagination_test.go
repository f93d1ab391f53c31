package check_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/check"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/zerror"
)

// pageJSON builds a listing envelope holding n products with ids skip+1..skip+n.
func pageJSON(n, total, skip, limit int) string {
	products := make([]string, 0, n)
	for i := range n {
		products = append(products, fmt.Sprintf(`{"id":%d,"title":"Product %d"}`, skip+i+1, skip+i+1))
	}
	return fmt.Sprintf(`{"products":[%s],"total":%d,"skip":%d,"limit":%d}`,
		strings.Join(products, ","), total, skip, limit)
}

func TestValidatePagination(t *testing.T) {
	t.Run("Should accept a full page echoing limit and skip", func(t *testing.T) {
		resp := newResponse(http.StatusOK, pageJSON(5, 194, 10, 5))
		assert.NoError(t, check.ValidatePagination(resp, 5, 10))
	})

	t.Run("Should reject a different limit", func(t *testing.T) {
		resp := newResponse(http.StatusOK, pageJSON(5, 194, 10, 30))
		err := check.ValidatePagination(resp, 5, 10)
		assert.ErrorIs(t, err, apperr.ValueMismatchErr)
		assert.Contains(t, err.Error(), "limit")
	})

	t.Run("Should reject a different skip", func(t *testing.T) {
		resp := newResponse(http.StatusOK, pageJSON(5, 194, 0, 5))
		err := check.ValidatePagination(resp, 5, 10)
		assert.ErrorIs(t, err, apperr.ValueMismatchErr)
		assert.Contains(t, err.Error(), "skip")
	})

	t.Run("Should reject a short page", func(t *testing.T) {
		resp := newResponse(http.StatusOK, pageJSON(3, 194, 10, 5))
		err := check.ValidatePagination(resp, 5, 10)
		assert.ErrorIs(t, err, apperr.PageSizeMismatchErr)
		assert.Equal(t, zerror.KindConstraintViolation, zerror.KindOf(err))
	})

	t.Run("Should expect every record when limit is zero", func(t *testing.T) {
		assert.NoError(t, check.ValidatePagination(newResponse(http.StatusOK, pageJSON(2, 2, 0, 2)), 0, 0))
		assert.NoError(t, check.ValidatePagination(newResponse(http.StatusOK, pageJSON(7, 10, 3, 7)), 0, 3))
		assert.NoError(t, check.ValidatePagination(newResponse(http.StatusOK, pageJSON(0, 10, 20, 0)), 0, 20))

		err := check.ValidatePagination(newResponse(http.StatusOK, pageJSON(1, 2, 0, 2)), 0, 0)
		assert.ErrorIs(t, err, apperr.PageSizeMismatchErr)

		err = check.ValidatePagination(newResponse(http.StatusOK, pageJSON(2, 2, 0, 30)), 0, 0)
		assert.ErrorIs(t, err, apperr.ValueMismatchErr)
	})

	t.Run("Should reject a body that is not JSON", func(t *testing.T) {
		err := check.ValidatePagination(newResponse(http.StatusOK, "<html>"), 5, 10)
		assert.ErrorIs(t, err, apperr.BodyNotJSONErr)
	})
}

func TestValidatePageWindow(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"full page", pageJSON(30, 194, 0, 30), nil},
		{"last partial page", pageJSON(4, 194, 190, 30), nil},
		{"limit zero returns everything", pageJSON(194, 194, 0, 194), nil},
		{"limit zero in envelope", pageJSON(7, 7, 0, 0), nil},
		{"skip beyond total", pageJSON(0, 194, 1000, 30), nil},
		{"skip beyond total with limit zero", pageJSON(0, 194, 1000, 0), nil},
		{"page larger than limit", pageJSON(31, 194, 0, 30), apperr.PageSizeMismatchErr},
		{"partial page too short", pageJSON(3, 194, 190, 30), apperr.PageSizeMismatchErr},
		{"limit zero with missing records", pageJSON(6, 7, 0, 0), apperr.PageSizeMismatchErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := check.ValidatePageWindow(newResponse(http.StatusOK, tt.body))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateErrorResponse(t *testing.T) {
	resp := newResponse(http.StatusBadRequest, `{"message":"Limit should be a number"}`)

	t.Run("Should match status and message substring", func(t *testing.T) {
		assert.NoError(t, check.ValidateErrorResponse(resp, http.StatusBadRequest, "Limit should be"))
	})

	t.Run("Should reject a different status", func(t *testing.T) {
		err := check.ValidateErrorResponse(resp, http.StatusNotFound, "Limit should be")
		assert.ErrorIs(t, err, apperr.UnexpectedStatusErr)
	})

	t.Run("Should reject a message without the substring", func(t *testing.T) {
		err := check.ValidateErrorResponse(resp, http.StatusBadRequest, "Skip should be")
		assert.ErrorIs(t, err, apperr.ValueMismatchErr)
	})

	t.Run("Should reject an error body without message", func(t *testing.T) {
		err := check.ValidateErrorResponse(newResponse(http.StatusBadRequest, `{"error":"bad"}`), http.StatusBadRequest, "bad")
		assert.ErrorIs(t, err, apperr.ContractMismatchErr)
	})
}

func TestValidatePaginationAgainstFixture(t *testing.T) {
	fixture := model.ProductsResponse{Total: 194, Skip: 0, Limit: 30}

	assert.NoError(t, check.ValidatePaginationAgainstFixture(newResponse(http.StatusOK, pageJSON(30, 194, 0, 30)), fixture))

	err := check.ValidatePaginationAgainstFixture(newResponse(http.StatusOK, pageJSON(30, 195, 0, 30)), fixture)
	assert.ErrorIs(t, err, apperr.ValueMismatchErr)
	assert.Contains(t, err.Error(), "total")
}

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/check"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/client"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/fixture"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/ptr"
)

func updateProduct(t *testing.T, id int, in model.ProductInput) model.Response {
	t.Helper()
	return call(t, func(ctx context.Context) (model.Response, error) {
		return catalog.UpdateProduct(ctx, id, in)
	})
}

// updated checks the update contract and returns the merged product.
func updated(t *testing.T, resp model.Response, id int) model.Product {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Status, "body: %s", resp.Body)
	p, err := check.DecodeBody[model.Product](resp)
	require.NoError(t, err)
	require.Equal(t, id, p.ID)
	return p
}

func TestUpdateProduct(t *testing.T) {
	data, err := fixture.LoadProductsPut()
	require.NoError(t, err)
	id := data.ProductID

	t.Run("Should update the title", func(t *testing.T) {
		resp := updateProduct(t, id, data.TitleUpdate)
		p := updated(t, resp, id)
		assert.Equal(t, *data.TitleUpdate.Title, p.Title)
		assert.NoError(t, check.CheckResponseTime(resp, maxResponseTime))
		assert.NoError(t, check.ValidateHeader(resp, "Content-Type", "application/json"))
	})

	t.Run("Should update several fields", func(t *testing.T) {
		p := updated(t, updateProduct(t, id, data.MultiUpdate), id)
		assert.Equal(t, *data.MultiUpdate.Title, p.Title)
		assert.Equal(t, *data.MultiUpdate.Price, p.Price)
		assert.Equal(t, *data.MultiUpdate.Stock, p.Stock)
	})

	t.Run("Should update every field and keep the product valid", func(t *testing.T) {
		resp := updateProduct(t, id, data.CompleteUpdate)
		p := updated(t, resp, id)
		assert.Equal(t, *data.CompleteUpdate.Description, p.Description)
		assert.Equal(t, *data.CompleteUpdate.Rating, p.Rating)
		assert.Equal(t, data.CompleteUpdate.Tags, p.Tags)

		obj, err := check.DecodeObject(resp.Body)
		require.NoError(t, err)
		assert.NoError(t, check.ValidateSingleProduct(obj))
		assert.NoError(t, check.ValidateProductDataTypes(obj))
	})

	t.Run("Should return the product for an empty body", func(t *testing.T) {
		updated(t, updateProduct(t, id, model.ProductInput{}), id)
	})

	t.Run("Should not persist updates", func(t *testing.T) {
		updated(t, updateProduct(t, id, data.TitleUpdate), id)

		resp := call(t, func(ctx context.Context) (model.Response, error) {
			return catalog.GetProduct(ctx, id)
		})
		p, err := check.DecodeBody[model.Product](resp)
		require.NoError(t, err)
		assert.NotEqual(t, *data.TitleUpdate.Title, p.Title)
	})

	t.Run("Should pass custom headers through", func(t *testing.T) {
		header := jsonHeader()
		header.Set("X-Custom-Header", "custom-value")
		header.Set("Authorization", "Bearer test-token")

		resp := sendRaw(t, http.MethodPut, client.ProductPath(fmt.Sprint(id)), `{"title":"Custom Header Update"}`, header)
		assert.Equal(t, "Custom Header Update", updated(t, resp, id).Title)
	})

	t.Run("Should accept a body without Content-Type", func(t *testing.T) {
		resp := sendRaw(t, http.MethodPut, client.ProductPath(fmt.Sprint(id)), `{"title":"No Content-Type"}`, nil)
		assert.Contains(t, []int{http.StatusOK, http.StatusBadRequest, http.StatusUnsupportedMediaType}, resp.Status)
	})
}

func TestUpdateProduct_EdgeCases(t *testing.T) {
	data, err := fixture.LoadProductsPut()
	require.NoError(t, err)
	id := data.ProductID

	for i, title := range []string{strings.Repeat("Long Title ", 100), "Title with !@#$%^&*()", "Title 🚀 ünïcödé 製品"} {
		t.Run(fmt.Sprintf("Should echo unusual title %d", i), func(t *testing.T) {
			p := updated(t, updateProduct(t, id, model.ProductInput{Title: ptr.New(title)}), id)
			assert.Equal(t, title, p.Title)
		})
	}

	t.Run("Should echo an extreme price", func(t *testing.T) {
		p := updated(t, updateProduct(t, id, model.ProductInput{Price: ptr.New(999999.99)}), id)
		assert.Equal(t, 999999.99, p.Price)
	})

	t.Run("Should accept or reject a negative price", func(t *testing.T) {
		resp := updateProduct(t, id, model.ProductInput{Price: ptr.New(-50.0)})
		assert.Contains(t, []int{http.StatusOK, http.StatusBadRequest, http.StatusUnprocessableEntity}, resp.Status)
	})

	t.Run("Should not find an invalid id", func(t *testing.T) {
		resp := sendRaw(t, http.MethodPut, client.ProductPath(data.InvalidID), `{"title":"x"}`, jsonHeader())
		assert.NoError(t, check.ValidateErrorResponse(resp, http.StatusNotFound, "not found"))
	})

	t.Run("Should not find a missing id", func(t *testing.T) {
		resp := updateProduct(t, data.NonExistentID, data.TitleUpdate)
		assert.NoError(t, check.ValidateErrorResponse(resp, http.StatusNotFound,
			fmt.Sprintf("Product with id '%d' not found", data.NonExistentID)))
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		resp := sendRaw(t, http.MethodPut, client.ProductPath(fmt.Sprint(id)), `{"title": "Invalid JSON",}`, jsonHeader())
		assert.Contains(t, []int{http.StatusBadRequest, http.StatusUnprocessableEntity}, resp.Status)
	})
}

func TestUpdateProduct_Concurrent(t *testing.T) {
	data, err := fixture.LoadProductsPut()
	require.NoError(t, err)
	id := data.ProductID

	resps := fanOut(t, data.ConcurrentCalls, func(ctx context.Context, i int) (model.Response, error) {
		return catalog.UpdateProduct(ctx, id, model.ProductInput{
			Title: ptr.New(fmt.Sprintf("Concurrent Update %d", i+1)),
		})
	})

	for i, resp := range resps {
		p := updated(t, resp, id)
		assert.Equal(t, fmt.Sprintf("Concurrent Update %d", i+1), p.Title)
		assert.NoError(t, check.CheckResponseTime(resp, maxResponseTime))
	}
}

package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/catalogtest"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/check"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/client"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/config"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/log"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/telemetry"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/correlationid"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/ptr"
)

type captured struct {
	method string
	path   string
	query  map[string][]string
	header http.Header
	body   []byte
}

// recorder answers every request with {} and remembers the last one.
func recorder(t *testing.T) (*httptest.Server, *captured) {
	t.Helper()

	last := &captured{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*last = captured{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			header: r.Header.Clone(),
			body:   body,
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	t.Cleanup(ts.Close)

	return ts, last
}

func newClient(baseURL string) *client.Client {
	return client.New(config.Catalog{BaseURL: baseURL, RequestTimeout: 5 * time.Second}, log.New(io.Discard, config.Log{}))
}

func TestClient_Query(t *testing.T) {
	ts, last := recorder(t)
	c := newClient(ts.URL)
	ctx := context.Background()

	t.Run("Should send no parameters by default", func(t *testing.T) {
		_, err := c.ListProducts(ctx, model.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, last.method)
		assert.Equal(t, client.ProductsPath, last.path)
		assert.Empty(t, last.query)
	})

	t.Run("Should render every list parameter", func(t *testing.T) {
		_, err := c.ListProducts(ctx, model.ListParams{
			Limit:  ptr.New(5),
			Skip:   ptr.New(0),
			Select: []string{"title", "price"},
			SortBy: "price",
			Order:  model.OrderDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"5"}, last.query["limit"])
		assert.Equal(t, []string{"0"}, last.query["skip"])
		assert.Equal(t, []string{"title,price"}, last.query["select"])
		assert.Equal(t, []string{"price"}, last.query["sortBy"])
		assert.Equal(t, []string{"desc"}, last.query["order"])
	})

	t.Run("Should always send q when searching", func(t *testing.T) {
		_, err := c.SearchProducts(ctx, "", model.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, client.SearchPath, last.path)
		assert.Equal(t, []string{""}, last.query["q"])
	})

	t.Run("Should escape path segments", func(t *testing.T) {
		_, err := c.Do(ctx, http.MethodGet, client.ProductPath("a b"), nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "/products/a b", last.path)

		_, err = c.ProductsByCategory(ctx, "smartphones", model.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, "/products/category/smartphones", last.path)
	})
}

func TestClient_Body(t *testing.T) {
	ts, last := recorder(t)
	c := newClient(ts.URL)

	_, err := c.UpdateProduct(context.Background(), 3, model.ProductInput{Title: ptr.New("Renamed")})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, last.method)
	assert.Equal(t, "/products/3", last.path)
	assert.Equal(t, "application/json", last.header.Get("Content-Type"))
	assert.JSONEq(t, `{"title":"Renamed"}`, string(last.body))
}

func TestClient_Headers(t *testing.T) {
	ctx := context.Background()
	cleanup, err := telemetry.InitTracer(ctx, config.Otel{ServiceName: "client-test", TraceIDRatio: 1})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, cleanup(ctx))
	})

	ts, last := recorder(t)
	c := newClient(ts.URL)

	t.Run("Should forward the caller's correlation id", func(t *testing.T) {
		_, err := c.Categories(correlationid.NewContext(ctx, "corr-1"))
		require.NoError(t, err)
		assert.Equal(t, "corr-1", last.header.Get(correlationid.Header))
	})

	t.Run("Should generate a correlation id", func(t *testing.T) {
		_, err := c.CategoryList(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, last.header.Get(correlationid.Header))
	})

	t.Run("Should propagate trace context", func(t *testing.T) {
		_, err := c.DeleteProduct(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, last.method)
		assert.NotEmpty(t, last.header.Get("traceparent"))
	})
}

func TestClient_Response(t *testing.T) {
	srv := catalogtest.New(log.New(io.Discard, config.Log{}))
	ts := srv.Start()
	t.Cleanup(ts.Close)

	c := newClient(ts.URL + "/")
	assert.Equal(t, ts.URL, c.BaseURL())

	t.Run("Should time and read the response", func(t *testing.T) {
		resp, err := c.GetProduct(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Positive(t, resp.Duration)
		assert.NoError(t, check.CheckResponseTime(resp, check.DefaultMaxResponseTime))
		assert.NoError(t, check.ValidateSingleProductResponse(resp))
	})

	t.Run("Should hand back error statuses as responses", func(t *testing.T) {
		resp, err := c.GetProduct(context.Background(), 9999)
		require.NoError(t, err)
		assert.NoError(t, check.ValidateErrorResponse(resp, http.StatusNotFound, "not found"))
	})

	t.Run("Should add a product", func(t *testing.T) {
		resp, err := c.AddProduct(context.Background(), model.ProductInput{
			Title: ptr.New("BMW Pencil"),
			Price: ptr.New(9.5),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.Status)

		var created map[string]any
		require.NoError(t, json.Unmarshal(resp.Body, &created))
		assert.Equal(t, "BMW Pencil", created["title"])
		assert.Contains(t, created, "id")
	})
}

func TestClient_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := newClient(url)
	_, err := c.ListProducts(context.Background(), model.ListParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send request GET /products")
}

// Package client is a thin typed client for the product catalog API. It sends
// requests and hands back fully read, timed responses; it never judges them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.9.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/config"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/carrier"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/correlationid"
)

var tracer = otel.Tracer("internal/client")

// Catalog API paths.
const (
	ProductsPath     = "/products"
	SearchPath       = "/products/search"
	CategoriesPath   = "/products/categories"
	CategoryListPath = "/products/category-list"
	AddPath          = "/products/add"
)

// ProductPath is the path of one product.
func ProductPath(id string) string {
	return ProductsPath + "/" + url.PathEscape(id)
}

// CategoryPath is the path of a category listing.
func CategoryPath(slug string) string {
	return ProductsPath + "/category/" + url.PathEscape(slug)
}

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg config.Catalog, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.ResolveBaseURL(),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger.With(slog.String("component", "catalog-client")),
	}
}

// BaseURL returns the root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends one request and reads the whole response. Only transport failures
// are returned as errors; any status code is a valid response.
func (c *Client) Do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body []byte,
	header http.Header,
) (model.Response, error) {
	ctx, _ = correlationid.Ensure(ctx)

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, span := tracer.Start(ctx, method+" "+path, trace.WithAttributes(
		semconv.HTTPMethodKey.String(method),
		semconv.HTTPURLKey.String(target),
	), trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return model.Response{}, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	carrier.InjectHeaders(ctx, req.Header)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return model.Response{}, fmt.Errorf("send request %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	duration := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return model.Response{}, fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	span.SetAttributes(semconv.HTTPStatusCodeKey.Int(res.StatusCode))
	if res.StatusCode >= 500 {
		span.SetStatus(codes.Error, fmt.Sprintf("error with HTTP status code %d", res.StatusCode))
	}

	c.logger.DebugContext(ctx, "catalog request",
		slog.String("method", method),
		slog.String("url", target),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", duration))

	return model.Response{
		Status:   res.StatusCode,
		Duration: duration,
		Headers:  res.Header,
		Body:     resBody,
	}, nil
}

// ListProducts calls GET /products.
func (c *Client) ListProducts(ctx context.Context, params model.ListParams) (model.Response, error) {
	query, err := listQuery(params)
	if err != nil {
		return model.Response{}, err
	}
	return c.Do(ctx, http.MethodGet, ProductsPath, query, nil, nil)
}

// GetProduct calls GET /products/{id}.
func (c *Client) GetProduct(ctx context.Context, id int) (model.Response, error) {
	return c.Do(ctx, http.MethodGet, ProductPath(strconv.Itoa(id)), nil, nil, nil)
}

// SearchProducts calls GET /products/search. q is always sent, even empty.
func (c *Client) SearchProducts(ctx context.Context, q string, params model.ListParams) (model.Response, error) {
	query, err := listQuery(params)
	if err != nil {
		return model.Response{}, err
	}
	query.Set("q", q)
	return c.Do(ctx, http.MethodGet, SearchPath, query, nil, nil)
}

// Categories calls GET /products/categories.
func (c *Client) Categories(ctx context.Context) (model.Response, error) {
	return c.Do(ctx, http.MethodGet, CategoriesPath, nil, nil, nil)
}

// CategoryList calls GET /products/category-list.
func (c *Client) CategoryList(ctx context.Context) (model.Response, error) {
	return c.Do(ctx, http.MethodGet, CategoryListPath, nil, nil, nil)
}

// ProductsByCategory calls GET /products/category/{slug}.
func (c *Client) ProductsByCategory(ctx context.Context, slug string, params model.ListParams) (model.Response, error) {
	query, err := listQuery(params)
	if err != nil {
		return model.Response{}, err
	}
	return c.Do(ctx, http.MethodGet, CategoryPath(slug), query, nil, nil)
}

// AddProduct calls POST /products/add.
func (c *Client) AddProduct(ctx context.Context, in model.ProductInput) (model.Response, error) {
	return c.sendJSON(ctx, http.MethodPost, AddPath, in)
}

// UpdateProduct calls PUT /products/{id}.
func (c *Client) UpdateProduct(ctx context.Context, id int, in model.ProductInput) (model.Response, error) {
	return c.sendJSON(ctx, http.MethodPut, ProductPath(strconv.Itoa(id)), in)
}

// DeleteProduct calls DELETE /products/{id}.
func (c *Client) DeleteProduct(ctx context.Context, id int) (model.Response, error) {
	return c.Do(ctx, http.MethodDelete, ProductPath(strconv.Itoa(id)), nil, nil, nil)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, v any) (model.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return model.Response{}, fmt.Errorf("encode %s %s body: %w", method, path, err)
	}
	return c.Do(ctx, method, path, nil, body, http.Header{"Content-Type": []string{"application/json"}})
}

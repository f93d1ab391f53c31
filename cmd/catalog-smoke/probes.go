package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/check"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/client"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/ptr"
)

type probe struct {
	name string
	run  func(ctx context.Context, c *client.Client) error
}

// probes returns the smoke pass in order. A probe checks shape and
// constraints first and latency last, so a slow but correct endpoint is
// reported as a timing violation only.
func probes(maxTime time.Duration) []probe {
	return []probe{
		{"list products", func(ctx context.Context, c *client.Client) error {
			resp, err := c.ListProducts(ctx, model.ListParams{})
			if err != nil {
				return err
			}
			if err := check.ValidateProductResponse(resp); err != nil {
				return err
			}
			if err := check.ValidatePageWindow(resp); err != nil {
				return err
			}
			return check.CheckResponseTime(resp, maxTime)
		}},
		{"get product", func(ctx context.Context, c *client.Client) error {
			resp, err := c.GetProduct(ctx, 1)
			if err != nil {
				return err
			}
			if err := check.ValidateSingleProductResponse(resp); err != nil {
				return err
			}
			obj, err := check.DecodeObject(resp.Body)
			if err != nil {
				return err
			}
			if err := check.ValidateProductDataTypes(obj); err != nil {
				return err
			}
			return check.CheckResponseTime(resp, maxTime)
		}},
		{"select fields", func(ctx context.Context, c *client.Client) error {
			fields := []string{"title", "price"}
			resp, err := c.ListProducts(ctx, model.ListParams{Limit: ptr.New(5), Select: fields})
			if err != nil {
				return err
			}
			page, err := check.DecodeBody[check.Page](resp)
			if err != nil {
				return err
			}
			for i, p := range page.Products {
				if err := check.ValidateExactFields(p, fields); err != nil {
					return fmt.Errorf("products[%d]: %w", i, err)
				}
			}
			return check.CheckResponseTime(resp, maxTime)
		}},
		{"search", func(ctx context.Context, c *client.Client) error {
			resp, err := c.SearchProducts(ctx, "phone", model.ListParams{})
			if err != nil {
				return err
			}
			if err := check.ValidateSearchResponse(resp); err != nil {
				return err
			}
			page, err := check.DecodeBody[model.ProductsResponse](resp)
			if err != nil {
				return err
			}
			if err := check.ValidateProductMatchesSearch(page.Products, "phone"); err != nil {
				return err
			}
			return check.CheckResponseTime(resp, maxTime)
		}},
		{"categories", func(ctx context.Context, c *client.Client) error {
			resp, err := c.Categories(ctx)
			if err != nil {
				return err
			}
			cs, err := check.DecodeBody[[]model.Category](resp)
			if err != nil {
				return err
			}
			if err := check.ValidateCategories(cs, nil); err != nil {
				return err
			}
			return check.CheckResponseTime(resp, maxTime)
		}},
		{"category list", func(ctx context.Context, c *client.Client) error {
			resp, err := c.CategoryList(ctx)
			if err != nil {
				return err
			}
			slugs, err := check.DecodeBody[[]string](resp)
			if err != nil {
				return err
			}
			if err := check.ValidateCategoryList(slugs, nil); err != nil {
				return err
			}
			return check.CheckResponseTime(resp, maxTime)
		}},
		{"delete product", func(ctx context.Context, c *client.Client) error {
			start := time.Now()
			resp, err := c.DeleteProduct(ctx, 1)
			if err != nil {
				return err
			}
			if err := check.ValidateDeletion(resp, 1, start, time.Now()); err != nil {
				return err
			}
			return check.CheckResponseTime(resp, maxTime)
		}},
	}
}

// Package fixture holds the recorded expectations the endpoint suites compare
// live responses against. Files are embedded so the suites carry no working
// directory assumptions.
package fixture

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"github.com/tuanvumaihuynh/catalog-e2e/pkg/validator"
)

//go:embed data/*.json
var files embed.FS

// Fixture file names, without extension.
const (
	NameProductsGet    = "products-get"
	NameProductsSearch = "products-search"
	NameCategories     = "products-categories"
	NameProductsPost   = "products-post"
	NameProductsPut    = "products-put"
	NameProductsDelete = "products-delete"
)

var newValidator = sync.OnceValues(func() (validator.Validator, error) {
	return validator.NewDefaultValidator()
})

// Load decodes the named fixture into T.
func Load[T any](name string) (T, error) {
	var v T

	b, err := files.ReadFile(path.Join("data", name+".json"))
	if err != nil {
		return v, fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("decode fixture %s: %w", name, err)
	}

	return v, nil
}

// loadValid is Load for struct fixtures carrying validate tags.
func loadValid[T any](name string) (T, error) {
	v, err := Load[T](name)
	if err != nil {
		return v, err
	}

	val, err := newValidator()
	if err != nil {
		return v, fmt.Errorf("create validator: %w", err)
	}
	if err := val.Validate(v); err != nil {
		return v, fmt.Errorf("validate fixture %s: %w", name, err)
	}

	return v, nil
}

func LoadProductsGet() (ProductsGet, error) {
	return loadValid[ProductsGet](NameProductsGet)
}

func LoadProductsSearch() (ProductsSearch, error) {
	return loadValid[ProductsSearch](NameProductsSearch)
}

func LoadCategories() (Categories, error) {
	return loadValid[Categories](NameCategories)
}

func LoadProductsPost() (ProductsPost, error) {
	return loadValid[ProductsPost](NameProductsPost)
}

func LoadProductsPut() (ProductsPut, error) {
	return loadValid[ProductsPut](NameProductsPut)
}

func LoadProductsDelete() (ProductsDelete, error) {
	return loadValid[ProductsDelete](NameProductsDelete)
}

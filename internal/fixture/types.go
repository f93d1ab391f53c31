package fixture

import "github.com/tuanvumaihuynh/catalog-e2e/internal/model"

// Window is a requested page.
type Window struct {
	Limit int `json:"limit" validate:"gte=0"`
	Skip  int `json:"skip" validate:"gte=0"`
}

// Params returns the window as list parameters.
func (w Window) Params() model.ListParams {
	limit, skip := w.Limit, w.Skip
	return model.ListParams{Limit: &limit, Skip: &skip}
}

type ProductsGet struct {
	DefaultPage       Window        `json:"defaultPage"`
	SmallPage         Window        `json:"smallPage"`
	SortedPage        Window        `json:"sortedPage"`
	SelectFields      []string      `json:"selectFields" validate:"min=1"`
	FieldCombinations [][]string    `json:"fieldCombinations" validate:"min=1,dive,min=1"`
	Product           model.Product `json:"product"`
	Grocery           model.Product `json:"grocery"`
	NonExistentID     int           `json:"nonExistentId" validate:"gt=0"`
}

type ProductsSearch struct {
	Query          string   `json:"query" validate:"required"`
	CategoryQuery  string   `json:"categoryQuery" validate:"required"`
	MixedCase      string   `json:"mixedCase" validate:"required"`
	MultiWord      string   `json:"multiWord" validate:"required"`
	NoResults      string   `json:"noResults" validate:"required"`
	Page           Window   `json:"page"`
	Injection      []string `json:"injection" validate:"min=1"`
	CrossSiteInput []string `json:"crossSiteInput" validate:"min=1"`
	Unicode        []string `json:"unicode" validate:"min=1"`
}

// KnownCategory is a category every catalog deployment is expected to carry.
type KnownCategory struct {
	Slug string `json:"slug" validate:"slug"`
	Name string `json:"name" validate:"required"`
}

type Categories struct {
	Known           []KnownCategory `json:"known" validate:"min=1,dive"`
	UnknownCategory string          `json:"unknownCategory" validate:"required"`
}

type ProductsPost struct {
	Minimal         model.ProductInput `json:"minimal"`
	Complete        model.ProductInput `json:"complete"`
	SpecialTitles   []string           `json:"specialTitles" validate:"min=1"`
	ExtremePrices   []float64          `json:"extremePrices" validate:"min=1"`
	MalformedBodies []string           `json:"malformedBodies" validate:"min=1"`
	ConcurrentCalls int                `json:"concurrentCalls" validate:"gt=0"`
}

type ProductsPut struct {
	ProductID       int                `json:"productId" validate:"gt=0"`
	TitleUpdate     model.ProductInput `json:"titleUpdate"`
	MultiUpdate     model.ProductInput `json:"multiUpdate"`
	CompleteUpdate  model.ProductInput `json:"completeUpdate"`
	InvalidID       string             `json:"invalidId" validate:"required"`
	NonExistentID   int                `json:"nonExistentId" validate:"gt=0"`
	ConcurrentCalls int                `json:"concurrentCalls" validate:"gt=0"`
}

type ProductsDelete struct {
	ProductID     int    `json:"productId" validate:"gt=0"`
	InvalidID     string `json:"invalidId" validate:"required"`
	NonExistentID int    `json:"nonExistentId" validate:"gt=0"`
	Repeats       int    `json:"repeats" validate:"gt=1"`
}

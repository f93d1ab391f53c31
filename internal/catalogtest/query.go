package catalogtest

import (
	"cmp"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

const defaultLimit = 30

// Upstream error messages for rejected query parameters.
const (
	msgLimitNotNumber = "Limit should be a number"
	msgSkipNotNumber  = "Skip should be a number"
	msgInvalidOrder   = "Order can be: 'asc' or 'desc'"
)

type listQuery struct {
	limit  int
	skip   int
	sortBy string
	desc   bool
	fields []string
}

// parseListQuery reads the collection parameters the way upstream does:
// non-numeric limit or skip and unknown orders are rejected, negative numbers
// fall back to the defaults, and an unknown sortBy is ignored. It returns the
// upstream message when the query is rejected.
func parseListQuery(q url.Values, fallbackLimit int) (listQuery, string) {
	lq := listQuery{limit: fallbackLimit}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return lq, msgLimitNotNumber
		}
		if n >= 0 {
			lq.limit = n
		}
	}

	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return lq, msgSkipNotNumber
		}
		lq.skip = max(n, 0)
	}

	switch order := q.Get("order"); order {
	case "", model.OrderAsc:
	case model.OrderDesc:
		lq.desc = true
	default:
		return lq, msgInvalidOrder
	}

	if sortBy := q.Get("sortBy"); sortBy != "" {
		if _, ok := sorters[sortBy]; ok {
			lq.sortBy = sortBy
		}
	}

	for f := range strings.SplitSeq(q.Get("select"), ",") {
		if f = strings.TrimSpace(f); f != "" {
			lq.fields = append(lq.fields, f)
		}
	}

	return lq, ""
}

var sorters = map[string]func(a, b model.Product) int{
	"id":                 func(a, b model.Product) int { return cmp.Compare(a.ID, b.ID) },
	"title":              func(a, b model.Product) int { return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)) },
	"category":           func(a, b model.Product) int { return cmp.Compare(a.Category, b.Category) },
	"brand":              func(a, b model.Product) int { return cmp.Compare(strings.ToLower(a.BrandOrEmpty()), strings.ToLower(b.BrandOrEmpty())) },
	"price":              func(a, b model.Product) int { return cmp.Compare(a.Price, b.Price) },
	"discountPercentage": func(a, b model.Product) int { return cmp.Compare(a.DiscountPercentage, b.DiscountPercentage) },
	"rating":             func(a, b model.Product) int { return cmp.Compare(a.Rating, b.Rating) },
	"stock":              func(a, b model.Product) int { return cmp.Compare(a.Stock, b.Stock) },
}

// window sorts a copy of products and cuts the requested page out of it. A
// limit of zero means every remaining product.
func (lq listQuery) window(products []model.Product) []model.Product {
	if lq.sortBy != "" {
		products = slices.Clone(products)
		less := sorters[lq.sortBy]
		slices.SortStableFunc(products, func(a, b model.Product) int {
			if lq.desc {
				return less(b, a)
			}
			return less(a, b)
		})
	}

	start := min(lq.skip, len(products))
	end := len(products)
	if lq.limit > 0 {
		end = min(start+lq.limit, end)
	}
	return products[start:end]
}

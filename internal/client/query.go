package client

import (
	"fmt"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

// listQuery renders list parameters with OpenAPI form style. select is sent
// unexploded, as one comma separated value.
func listQuery(params model.ListParams) (url.Values, error) {
	query := url.Values{}

	type param struct {
		name    string
		explode bool
		value   any
	}
	var ps []param
	if params.Limit != nil {
		ps = append(ps, param{"limit", true, *params.Limit})
	}
	if params.Skip != nil {
		ps = append(ps, param{"skip", true, *params.Skip})
	}
	if len(params.Select) > 0 {
		ps = append(ps, param{"select", false, params.Select})
	}
	if params.SortBy != "" {
		ps = append(ps, param{"sortBy", true, params.SortBy})
	}
	if params.Order != "" {
		ps = append(ps, param{"order", true, params.Order})
	}

	for _, p := range ps {
		frag, err := runtime.StyleParamWithLocation("form", p.explode, p.name, runtime.ParamLocationQuery, p.value)
		if err != nil {
			return nil, fmt.Errorf("style %s parameter: %w", p.name, err)
		}
		parsed, err := url.ParseQuery(frag)
		if err != nil {
			return nil, fmt.Errorf("parse %s parameter: %w", p.name, err)
		}
		for k, vs := range parsed {
			for _, v := range vs {
				query.Add(k, v)
			}
		}
	}

	return query, nil
}

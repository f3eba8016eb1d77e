package spoonacular

import (
	"net/url"
	"strconv"
	"strings"
)

// Upstream endpoint paths
const (
	PathComplexSearch     = "recipes/complexSearch"
	PathFindByIngredients = "recipes/findByIngredients"
	PathInformationBulk   = "recipes/informationBulk"
	PathSubstitutes       = "food/ingredients/substitutes"
)

// PageSize is the number of results requested for every search
const PageSize = 10

// reserved keys are understood locally and never forwarded verbatim.
var reservedSearchKeys = map[string]bool{
	"apiKey":     true,
	"query":      true,
	"difficulty": true,
}

// SearchParams are the caller-supplied search inputs.
type SearchParams struct {
	Query              string
	IncludeIngredients string
	Cuisine            string
	Diet               string
	Type               string
	MaxReadyTime       string
	// Difficulty is applied locally after normalization; the upstream API
	// has no such filter.
	Difficulty string
	// Extra holds any other upstream parameters to pass through.
	Extra url.Values
}

// ParseSearchParams reads search inputs from query-string values.
func ParseSearchParams(values url.Values) SearchParams {
	p := SearchParams{
		Query:              strings.TrimSpace(values.Get("query")),
		IncludeIngredients: strings.TrimSpace(values.Get("includeIngredients")),
		Cuisine:            values.Get("cuisine"),
		Diet:               values.Get("diet"),
		Type:               values.Get("type"),
		MaxReadyTime:       values.Get("maxReadyTime"),
		Difficulty:         strings.TrimSpace(values.Get("difficulty")),
		Extra:              url.Values{},
	}
	for k, vs := range values {
		switch k {
		case "query", "includeIngredients", "cuisine", "diet", "type", "maxReadyTime", "difficulty":
			continue
		}
		if reservedSearchKeys[k] {
			continue
		}
		p.Extra[k] = append([]string(nil), vs...)
	}
	return p
}

// Route is the endpoint and parameter set a search resolves to.
type Route struct {
	Endpoint string
	Params   url.Values
	// HydrateWithBulk is set when the endpoint returns bare summaries that
	// need a second informationBulk call before normalization.
	HydrateWithBulk bool
}

// RouteSearch decides which upstream endpoint serves p.
func RouteSearch(p SearchParams) Route {
	params := url.Values{}
	for k, vs := range p.Extra {
		if reservedSearchKeys[k] {
			continue
		}
		params[k] = append([]string(nil), vs...)
	}
	setIfPresent(params, "cuisine", p.Cuisine)
	setIfPresent(params, "diet", p.Diet)
	setIfPresent(params, "type", p.Type)
	setIfPresent(params, "maxReadyTime", p.MaxReadyTime)

	params.Set("number", strconv.Itoa(PageSize))
	params.Set("addRecipeInformation", "true")

	if p.IncludeIngredients != "" && p.Query == "" {
		params.Del("includeIngredients")
		params.Set("ingredients", p.IncludeIngredients)
		return Route{
			Endpoint:        PathFindByIngredients,
			Params:          params,
			HydrateWithBulk: true,
		}
	}

	if p.Query != "" {
		params.Set("titleMatch", p.Query)
	}
	setIfPresent(params, "includeIngredients", p.IncludeIngredients)

	return Route{Endpoint: PathComplexSearch, Params: params}
}

// BulkParams are the parameters of the informationBulk hydration call.
func BulkParams(ids []int) url.Values {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return url.Values{
		"ids":              {strings.Join(parts, ",")},
		"includeNutrition": {"true"},
	}
}

// WantsDifficulty reports whether a local difficulty filter was requested.
func (p SearchParams) WantsDifficulty() bool {
	return p.Difficulty != "" && !strings.EqualFold(p.Difficulty, "all")
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

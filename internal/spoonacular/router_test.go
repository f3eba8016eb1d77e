package spoonacular

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteSearch(t *testing.T) {
	t.Run("should route an ingredient list without query to findByIngredients", func(t *testing.T) {
		p := ParseSearchParams(url.Values{"includeIngredients": {"eggs,flour"}})
		route := RouteSearch(p)

		assert.Equal(t, PathFindByIngredients, route.Endpoint)
		assert.True(t, route.HydrateWithBulk)
		assert.Equal(t, "eggs,flour", route.Params.Get("ingredients"))
		assert.False(t, route.Params.Has("includeIngredients"))
		assert.Equal(t, "10", route.Params.Get("number"))
		assert.Equal(t, "true", route.Params.Get("addRecipeInformation"))
	})

	t.Run("should remap a query to titleMatch on complexSearch", func(t *testing.T) {
		p := ParseSearchParams(url.Values{"query": {"pasta"}})
		route := RouteSearch(p)

		assert.Equal(t, PathComplexSearch, route.Endpoint)
		assert.False(t, route.HydrateWithBulk)
		assert.Equal(t, "pasta", route.Params.Get("titleMatch"))
		assert.False(t, route.Params.Has("query"))
		assert.False(t, route.Params.Has("includeIngredients"))
		assert.Equal(t, "10", route.Params.Get("number"))
	})

	t.Run("should keep ingredients on complexSearch when a query is present", func(t *testing.T) {
		p := ParseSearchParams(url.Values{"query": {"cake"}, "includeIngredients": {"eggs"}})
		route := RouteSearch(p)

		assert.Equal(t, PathComplexSearch, route.Endpoint)
		assert.Equal(t, "eggs", route.Params.Get("includeIngredients"))
		assert.Equal(t, "cake", route.Params.Get("titleMatch"))
	})

	t.Run("should forward filters and never forward difficulty", func(t *testing.T) {
		p := ParseSearchParams(url.Values{
			"cuisine":      {"Italian"},
			"diet":         {"vegan"},
			"type":         {"main course"},
			"maxReadyTime": {"30"},
			"difficulty":   {"easy"},
			"sort":         {"popularity"},
			"apiKey":       {"stolen"},
			"number":       {"100"},
		})
		route := RouteSearch(p)

		assert.Equal(t, "Italian", route.Params.Get("cuisine"))
		assert.Equal(t, "vegan", route.Params.Get("diet"))
		assert.Equal(t, "main course", route.Params.Get("type"))
		assert.Equal(t, "30", route.Params.Get("maxReadyTime"))
		assert.Equal(t, "popularity", route.Params.Get("sort"))
		assert.Equal(t, "10", route.Params.Get("number"))
		assert.False(t, route.Params.Has("difficulty"))
		assert.False(t, route.Params.Has("apiKey"))
		assert.Equal(t, "easy", p.Difficulty)
		assert.True(t, p.WantsDifficulty())
	})

	t.Run("should route an empty search to complexSearch", func(t *testing.T) {
		route := RouteSearch(ParseSearchParams(url.Values{}))
		assert.Equal(t, PathComplexSearch, route.Endpoint)
		assert.False(t, route.Params.Has("titleMatch"))
	})
}

func TestWantsDifficulty(t *testing.T) {
	assert.False(t, SearchParams{}.WantsDifficulty())
	assert.False(t, SearchParams{Difficulty: "All"}.WantsDifficulty())
	assert.True(t, SearchParams{Difficulty: "hard"}.WantsDifficulty())
}

func TestBulkParams(t *testing.T) {
	params := BulkParams([]int{3, 1, 2})
	assert.Equal(t, "3,1,2", params.Get("ids"))
	assert.Equal(t, "true", params.Get("includeNutrition"))
}

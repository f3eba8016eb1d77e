package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-genie/backend/internal/middleware"
	"github.com/pageza/recipe-genie/backend/internal/mocks"
	"github.com/pageza/recipe-genie/backend/internal/spoonacular"
	"github.com/pageza/recipe-genie/backend/internal/types"
)

func setupRecipeTestRouter(t *testing.T) (http.Handler, *mocks.MockRecipeService) {
	t.Helper()
	recipes := new(mocks.MockRecipeService)
	t.Cleanup(func() { recipes.AssertExpectations(t) })

	r, v1 := newTestRouter(uuid.Nil)
	NewRecipeHandler(recipes).RegisterRoutes(v1)
	return r, recipes
}

func TestGetPopularRecipes(t *testing.T) {
	t.Run("should list popular recipes", func(t *testing.T) {
		r, recipes := setupRecipeTestRouter(t)
		recipes.On("GetPopularRecipes", mock.Anything).
			Return([]types.RecipeSummary{{ID: 1, Title: "Pasta"}, {ID: 2, Title: "Soup"}}, nil)

		w := doRequest(t, r, http.MethodGet, "/api/v1/recipes/popular", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Recipes []types.RecipeSummary `json:"recipes"`
		}
		decode(t, w, &resp)
		assert.Len(t, resp.Recipes, 2)
		assert.Equal(t, "Pasta", resp.Recipes[0].Title)
	})

	t.Run("should answer 503 when the API key is missing", func(t *testing.T) {
		r, recipes := setupRecipeTestRouter(t)
		recipes.On("GetPopularRecipes", mock.Anything).Return(nil, spoonacular.ErrMissingAPIKey)

		w := doRequest(t, r, http.MethodGet, "/api/v1/recipes/popular", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp middleware.ErrorResponse
		decode(t, w, &resp)
		assert.Equal(t, spoonacular.ErrMissingAPIKey.Message, resp.Error)
	})
}

func TestGetRecipeOfTheDay(t *testing.T) {
	t.Run("should return the recipe", func(t *testing.T) {
		r, recipes := setupRecipeTestRouter(t)
		recipes.On("GetRecipeOfTheDay", mock.Anything).
			Return(&types.RecipeWithDetails{RecipeSummary: types.RecipeSummary{ID: 7, Title: "Salad"}}, nil)

		w := doRequest(t, r, http.MethodGet, "/api/v1/recipes/of-the-day", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Salad"`)
	})

	t.Run("should answer 204 when there is none", func(t *testing.T) {
		r, recipes := setupRecipeTestRouter(t)
		recipes.On("GetRecipeOfTheDay", mock.Anything).Return(nil, nil)

		w := doRequest(t, r, http.MethodGet, "/api/v1/recipes/of-the-day", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestGetRecipe(t *testing.T) {
	t.Run("should return the details", func(t *testing.T) {
		r, recipes := setupRecipeTestRouter(t)
		recipes.On("GetRecipeDetails", mock.Anything, 42).
			Return(&types.RecipeWithDetails{RecipeSummary: types.RecipeSummary{ID: 42, Title: "Stew"}}, nil)

		w := doRequest(t, r, http.MethodGet, "/api/v1/recipes/42", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Recipe types.RecipeWithDetails `json:"recipe"`
		}
		decode(t, w, &resp)
		assert.Equal(t, 42, resp.Recipe.ID)
	})

	t.Run("should answer 404 when the recipe could not be fetched", func(t *testing.T) {
		r, recipes := setupRecipeTestRouter(t)
		recipes.On("GetRecipeDetails", mock.Anything, 9).Return(nil, nil)

		w := doRequest(t, r, http.MethodGet, "/api/v1/recipes/9", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should reject a bad id", func(t *testing.T) {
		r, _ := setupRecipeTestRouter(t)

		for _, id := range []string{"abc", "0", "-3"} {
			w := doRequest(t, r, http.MethodGet, "/api/v1/recipes/"+id, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, id)
		}
	})
}

func TestSearchRecipes(t *testing.T) {
	t.Run("should pass parsed parameters to the service", func(t *testing.T) {
		r, recipes := setupRecipeTestRouter(t)
		recipes.On("SearchRecipes", mock.Anything, mock.MatchedBy(func(p spoonacular.SearchParams) bool {
			return p.Query == "pasta" && p.Difficulty == "Easy" && p.Cuisine == "Italian"
		})).Return([]types.RecipeSummary{{ID: 3, Title: "Carbonara"}}, nil)

		w := doRequest(t, r, http.MethodGet, "/api/v1/recipes/search?query=pasta&difficulty=Easy&cuisine=Italian", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Carbonara")
	})

	t.Run("should answer 429 when the upstream quota is spent", func(t *testing.T) {
		r, recipes := setupRecipeTestRouter(t)
		recipes.On("SearchRecipes", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("failed to search recipes: %w", spoonacular.ErrRateLimited))

		w := doRequest(t, r, http.MethodGet, "/api/v1/recipes/search?query=pasta", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		var resp middleware.ErrorResponse
		decode(t, w, &resp)
		assert.Equal(t, middleware.MsgRateLimited, resp.Error)
	})

	t.Run("should run the limiter before searching", func(t *testing.T) {
		recipes := new(mocks.MockRecipeService)
		r, v1 := newTestRouter(uuid.Nil)
		NewRecipeHandler(recipes).RegisterRoutes(v1, func(c *gin.Context) {
			c.AbortWithStatus(http.StatusTooManyRequests)
		})

		w := doRequest(t, r, http.MethodGet, "/api/v1/recipes/search?query=pasta", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		recipes.AssertNotCalled(t, "SearchRecipes", mock.Anything, mock.Anything)
	})
}

func TestGetSubstitutions(t *testing.T) {
	t.Run("should return substitutes", func(t *testing.T) {
		r, recipes := setupRecipeTestRouter(t)
		recipes.On("GetIngredientSubstitutions", mock.Anything, "butter").Return(&types.IngredientSubstitution{
			Ingredient:  "butter",
			Substitutes: []string{"1 cup = 7/8 cup shortening"},
			Message:     "Found 1 substitute for the ingredient.",
		}, nil)

		w := doRequest(t, r, http.MethodGet, "/api/v1/substitutions?ingredient=butter", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Substitution types.IngredientSubstitution `json:"substitution"`
		}
		decode(t, w, &resp)
		assert.Equal(t, []string{"1 cup = 7/8 cup shortening"}, resp.Substitution.Substitutes)
	})

	t.Run("should require an ingredient", func(t *testing.T) {
		r, _ := setupRecipeTestRouter(t)

		w := doRequest(t, r, http.MethodGet, "/api/v1/substitutions?ingredient=%20", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should answer 502 when the upstream is down", func(t *testing.T) {
		r, recipes := setupRecipeTestRouter(t)
		recipes.On("GetIngredientSubstitutions", mock.Anything, "saffron").
			Return(nil, &spoonacular.UpstreamError{StatusCode: http.StatusInternalServerError, Status: "500 Internal Server Error"})

		w := doRequest(t, r, http.MethodGet, "/api/v1/substitutions?ingredient=saffron", nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestPresetRoutes(t *testing.T) {
	r, v1 := newTestRouter(uuid.Nil)
	RegisterPresetRoutes(v1)

	w := doRequest(t, r, http.MethodGet, "/api/v1/presets/diets", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var diets struct {
		Presets []types.SearchPreset `json:"presets"`
	}
	decode(t, w, &diets)
	assert.Len(t, diets.Presets, 4)
	assert.Equal(t, "ketogenic", diets.Presets[0].Query["diet"])

	w = doRequest(t, r, http.MethodGet, "/api/v1/presets/menus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var menus struct {
		Presets []types.SearchPreset `json:"presets"`
	}
	decode(t, w, &menus)
	assert.Len(t, menus.Presets, 4)
	assert.Equal(t, "2", menus.Presets[2].Query["number"])
}

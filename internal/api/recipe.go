package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-genie/backend/internal/service"
	"github.com/pageza/recipe-genie/backend/internal/spoonacular"
)

// RecipeHandler serves the recipe browse, search and substitution routes
type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes mounts the recipe routes. limit, when given, guards the
// routes a client can trigger repeatedly with fresh upstream calls.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, limit ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/popular", h.GetPopularRecipes)
		recipes.GET("/of-the-day", h.GetRecipeOfTheDay)
		recipes.GET("/search", chain(limit, h.SearchRecipes)...)
		recipes.GET("/:id", h.GetRecipe)
	}
	router.GET("/substitutions", chain(limit, h.GetSubstitutions)...)
}

func chain(middleware []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(middleware)+1)
	return append(append(out, middleware...), handler)
}

func (h *RecipeHandler) GetPopularRecipes(c *gin.Context) {
	recipes, err := h.recipes.GetPopularRecipes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipeOfTheDay(c *gin.Context) {
	recipe, err := h.recipes.GetRecipeOfTheDay(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if recipe == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.GetRecipeDetails(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	params := spoonacular.ParseSearchParams(c.Request.URL.Query())

	recipes, err := h.recipes.SearchRecipes(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetSubstitutions(c *gin.Context) {
	ingredient := strings.TrimSpace(c.Query("ingredient"))
	if ingredient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient is required"})
		return
	}

	sub, err := h.recipes.GetIngredientSubstitutions(c.Request.Context(), ingredient)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"substitution": sub})
}

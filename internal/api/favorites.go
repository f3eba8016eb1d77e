package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/recipe-genie/backend/internal/middleware"
	"github.com/pageza/recipe-genie/backend/internal/service"
	"github.com/pageza/recipe-genie/backend/internal/types"
)

// FavoriteHandler serves the favorites routes. All routes need a session.
type FavoriteHandler struct {
	favorites service.IFavoriteService
	recipes   service.IRecipeService
}

func NewFavoriteHandler(favorites service.IFavoriteService, recipes service.IRecipeService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, recipes: recipes}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.GET("/recipes", h.ListFavoriteRecipes)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("/:recipeId", h.RemoveFavorite)
	}
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	ids, err := h.favorites.ListFavorites(c.Request.Context(), owner)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe_ids": ids})
}

func (h *FavoriteHandler) ListFavoriteRecipes(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	ids, err := h.favorites.ListFavorites(c.Request.Context(), owner)
	if err != nil {
		_ = c.Error(err)
		return
	}

	recipes, err := h.recipes.GetRecipesByIDs(c.Request.Context(), ids)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var req types.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	if err := h.favorites.AddFavorite(c.Request.Context(), owner, req.RecipeID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe_id": req.RecipeID})
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("recipeId"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.favorites.RemoveFavorite(c.Request.Context(), owner, id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// requireOwner reads the session owner or answers 401.
func requireOwner(c *gin.Context) (owner uuid.UUID, ok bool) {
	owner, ok = middleware.OwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
	}
	return owner, ok
}

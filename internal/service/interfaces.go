package service

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/google/uuid"

	"github.com/pageza/recipe-genie/backend/internal/spoonacular"
	"github.com/pageza/recipe-genie/backend/internal/types"
)

// Upstream builds request URLs and performs the calls. *spoonacular.Client
// implements it.
type Upstream interface {
	URL(path string, params url.Values) (string, error)
	Fetch(ctx context.Context, rawURL string) (json.RawMessage, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	GetPopularRecipes(ctx context.Context) ([]types.RecipeSummary, error)
	GetRecipeOfTheDay(ctx context.Context) (*types.RecipeWithDetails, error)
	GetRecipeDetails(ctx context.Context, id int) (*types.RecipeWithDetails, error)
	SearchRecipes(ctx context.Context, params spoonacular.SearchParams) ([]types.RecipeSummary, error)
	SearchRecipesByIngredients(ctx context.Context, ingredients string) ([]types.RecipeSummary, error)
	GetIngredientSubstitutions(ctx context.Context, ingredient string) (*types.IngredientSubstitution, error)
	GetRecipesByIDs(ctx context.Context, ids []int) ([]types.RecipeWithDetails, error)
}

// IFavoriteService defines the interface for favorite operations
type IFavoriteService interface {
	AddFavorite(ctx context.Context, owner uuid.UUID, recipeID int) error
	RemoveFavorite(ctx context.Context, owner uuid.UUID, recipeID int) error
	ListFavorites(ctx context.Context, owner uuid.UUID) ([]int, error)
	IsFavorite(ctx context.Context, owner uuid.UUID, recipeID int) (bool, error)
}

// IMealPlanService defines the interface for meal plan operations
type IMealPlanService interface {
	AddMeal(ctx context.Context, owner uuid.UUID, date, mealType string, recipe types.RecipeSummary) (types.Meal, bool, error)
	RemoveMeal(ctx context.Context, owner uuid.UUID, date, mealID string) error
	MealsForDate(ctx context.Context, owner uuid.UUID, date string) ([]types.Meal, error)
	Plan(ctx context.Context, owner uuid.UUID) (types.MealPlan, error)
}

// ISessionService defines the interface for anonymous sessions
type ISessionService interface {
	IssueSession() (*types.SessionResponse, error)
	ValidateToken(token string) (*types.SessionClaims, error)
}

// IPlanExportService defines the interface for meal plan exports
type IPlanExportService interface {
	Enabled() bool
	ExportPlan(ctx context.Context, owner uuid.UUID) (*types.PlanExportResponse, error)
}

var (
	_ IRecipeService     = (*RecipeService)(nil)
	_ IFavoriteService   = (*FavoriteService)(nil)
	_ IMealPlanService   = (*MealPlanService)(nil)
	_ ISessionService    = (*SessionService)(nil)
	_ IPlanExportService = (*PlanExportService)(nil)
	_ Upstream           = (*spoonacular.Client)(nil)
)

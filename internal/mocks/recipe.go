package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-genie/backend/internal/spoonacular"
	"github.com/pageza/recipe-genie/backend/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) GetPopularRecipes(ctx context.Context) ([]types.RecipeSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeSummary), args.Error(1)
}

func (m *MockRecipeService) GetRecipeOfTheDay(ctx context.Context) (*types.RecipeWithDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeWithDetails), args.Error(1)
}

func (m *MockRecipeService) GetRecipeDetails(ctx context.Context, id int) (*types.RecipeWithDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeWithDetails), args.Error(1)
}

func (m *MockRecipeService) SearchRecipes(ctx context.Context, params spoonacular.SearchParams) ([]types.RecipeSummary, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeSummary), args.Error(1)
}

func (m *MockRecipeService) SearchRecipesByIngredients(ctx context.Context, ingredients string) ([]types.RecipeSummary, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeSummary), args.Error(1)
}

func (m *MockRecipeService) GetIngredientSubstitutions(ctx context.Context, ingredient string) (*types.IngredientSubstitution, error) {
	args := m.Called(ctx, ingredient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.IngredientSubstitution), args.Error(1)
}

func (m *MockRecipeService) GetRecipesByIDs(ctx context.Context, ids []int) ([]types.RecipeWithDetails, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeWithDetails), args.Error(1)
}

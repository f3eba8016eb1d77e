package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/pageza/recipe-genie/backend/internal/cache"
	"github.com/pageza/recipe-genie/backend/internal/spoonacular"
	"github.com/pageza/recipe-genie/backend/internal/types"
)

// defaultDetailConcurrency bounds the parallel detail lookups of GetRecipesByIDs.
const defaultDetailConcurrency = 4

// RecipeOptions tune the cache behaviour of a RecipeService.
type RecipeOptions struct {
	Policy cache.Policy
	// CacheBrowseCalls controls whether the popular and recipe-of-the-day list
	// calls go through the cache. Detail, search, bulk and substitution calls
	// are always cached.
	CacheBrowseCalls  bool
	DetailConcurrency int
}

// RecipeService is the recipe data-access layer: it checks the cache, calls
// the upstream API on a miss and normalizes what comes back.
type RecipeService struct {
	upstream          Upstream
	cache             cache.Cache
	policy            cache.Policy
	cacheBrowseCalls  bool
	detailConcurrency int
	logger            *log.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(upstream Upstream, c cache.Cache, opts RecipeOptions, logger *log.Logger) *RecipeService {
	if logger == nil {
		logger = log.Default()
	}
	if opts.DetailConcurrency <= 0 {
		opts.DetailConcurrency = defaultDetailConcurrency
	}
	return &RecipeService{
		upstream:          upstream,
		cache:             c,
		policy:            opts.Policy,
		cacheBrowseCalls:  opts.CacheBrowseCalls,
		detailConcurrency: opts.DetailConcurrency,
		logger:            logger,
	}
}

// GetPopularRecipes returns up to ten popular recipes. Upstream failures
// yield an empty list; only a configuration error is returned.
func (s *RecipeService) GetPopularRecipes(ctx context.Context) ([]types.RecipeSummary, error) {
	rawURL, err := s.upstream.URL(spoonacular.PathComplexSearch, url.Values{
		"sort":                 {"popularity"},
		"number":               {strconv.Itoa(spoonacular.PageSize)},
		"addRecipeInformation": {"true"},
	})
	if err != nil {
		return nil, err
	}

	payload, err := s.fetch(ctx, cache.KindPopular, rawURL, s.cacheBrowseCalls)
	if err != nil {
		s.logBrowseFailure("popular recipes", err)
		return []types.RecipeSummary{}, nil
	}
	return spoonacular.ToSummaries(payload), nil
}

// GetRecipeOfTheDay picks the healthiest listed recipe and returns its
// details, or nil when nothing could be fetched.
func (s *RecipeService) GetRecipeOfTheDay(ctx context.Context) (*types.RecipeWithDetails, error) {
	rawURL, err := s.upstream.URL(spoonacular.PathComplexSearch, url.Values{
		"sort":                 {"healthiness"},
		"number":               {"1"},
		"addRecipeInformation": {"true"},
	})
	if err != nil {
		return nil, err
	}

	payload, err := s.fetch(ctx, cache.KindRecipeOfDay, rawURL, s.cacheBrowseCalls)
	if err != nil {
		s.logBrowseFailure("recipe of the day", err)
		return nil, nil
	}

	ids := spoonacular.ListIDs(payload)
	if len(ids) == 0 {
		return nil, nil
	}
	return s.GetRecipeDetails(ctx, ids[0])
}

// GetRecipeDetails returns the full record for id, or nil when it could not
// be fetched.
func (s *RecipeService) GetRecipeDetails(ctx context.Context, id int) (*types.RecipeWithDetails, error) {
	rawURL, err := s.upstream.URL(detailPath(id), url.Values{"includeNutrition": {"true"}})
	if err != nil {
		return nil, err
	}

	payload, err := s.fetch(ctx, cache.KindDetails, rawURL, true)
	if err != nil {
		s.logBrowseFailure(fmt.Sprintf("recipe %d", id), err)
		return nil, nil
	}

	details := spoonacular.ToDetails(payload)
	return &details, nil
}

// SearchRecipes runs a routed search and applies the local difficulty filter.
// A rate limit is returned to the caller; any other upstream failure yields
// an empty list.
func (s *RecipeService) SearchRecipes(ctx context.Context, params spoonacular.SearchParams) ([]types.RecipeSummary, error) {
	route := spoonacular.RouteSearch(params)

	rawURL, err := s.upstream.URL(route.Endpoint, route.Params)
	if err != nil {
		return nil, err
	}

	payload, err := s.fetch(ctx, cache.KindSearch, rawURL, true)
	if err != nil {
		return s.searchFailure(err)
	}

	if route.HydrateWithBulk {
		ids := spoonacular.ListIDs(payload)
		if len(ids) == 0 {
			return []types.RecipeSummary{}, nil
		}

		bulkURL, err := s.upstream.URL(spoonacular.PathInformationBulk, spoonacular.BulkParams(ids))
		if err != nil {
			return nil, err
		}
		payload, err = s.fetch(ctx, cache.KindBulk, bulkURL, true)
		if err != nil {
			return s.searchFailure(err)
		}
	}

	return spoonacular.FilterByDifficulty(spoonacular.ToSummaries(payload), params.Difficulty), nil
}

// SearchRecipesByIngredients searches by a comma-separated ingredient list.
func (s *RecipeService) SearchRecipesByIngredients(ctx context.Context, ingredients string) ([]types.RecipeSummary, error) {
	return s.SearchRecipes(ctx, spoonacular.SearchParams{IncludeIngredients: ingredients})
}

// GetIngredientSubstitutions looks up substitutes for an ingredient. Every
// failure is returned to the caller.
func (s *RecipeService) GetIngredientSubstitutions(ctx context.Context, ingredient string) (*types.IngredientSubstitution, error) {
	rawURL, err := s.upstream.URL(spoonacular.PathSubstitutes, url.Values{"ingredientName": {ingredient}})
	if err != nil {
		return nil, err
	}

	payload, err := s.fetch(ctx, cache.KindSubstitutes, rawURL, true)
	if err != nil {
		s.logger.Printf("[RecipeService] Failed to fetch substitutions for %s: %v", ingredient, err)
		return nil, fmt.Errorf("failed to fetch substitutions for %s: %w", ingredient, err)
	}

	sub := spoonacular.ToSubstitution(payload)
	return &sub, nil
}

// GetRecipesByIDs fetches the details of several recipes concurrently.
// Recipes that could not be fetched are left out; the order of ids is kept.
func (s *RecipeService) GetRecipesByIDs(ctx context.Context, ids []int) ([]types.RecipeWithDetails, error) {
	results := make([]*types.RecipeWithDetails, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.detailConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			details, err := s.GetRecipeDetails(gctx, id)
			if err != nil {
				return err
			}
			results[i] = details
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recipes := make([]types.RecipeWithDetails, 0, len(ids))
	for _, r := range results {
		if r != nil {
			recipes = append(recipes, *r)
		}
	}
	return recipes, nil
}

// fetch serves rawURL from the cache when allowed, falling back to the
// upstream API and storing a successful payload.
func (s *RecipeService) fetch(ctx context.Context, kind cache.Kind, rawURL string, useCache bool) (json.RawMessage, error) {
	if useCache {
		if payload, ok := s.cache.Get(ctx, rawURL); ok {
			return payload, nil
		}
	}

	payload, err := s.upstream.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if useCache {
		s.cache.Put(ctx, rawURL, payload, s.policy.TTL(kind))
	}
	return payload, nil
}

func (s *RecipeService) searchFailure(err error) ([]types.RecipeSummary, error) {
	if errors.Is(err, spoonacular.ErrRateLimited) {
		s.logger.Printf("[RecipeService] Failed to search recipes: %v", err)
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	s.logger.Printf("[RecipeService] Search failed, returning no results: %v", err)
	return []types.RecipeSummary{}, nil
}

func (s *RecipeService) logBrowseFailure(what string, err error) {
	if errors.Is(err, spoonacular.ErrRateLimited) {
		s.logger.Printf("[RecipeService] Could not fetch %s due to API limit", what)
		return
	}
	s.logger.Printf("[RecipeService] Failed to fetch %s: %v", what, err)
}

func detailPath(id int) string {
	return "recipes/" + strconv.Itoa(id) + "/information"
}

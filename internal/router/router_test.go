package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-genie/backend/internal/mocks"
	"github.com/pageza/recipe-genie/backend/internal/service"
	"github.com/pageza/recipe-genie/backend/internal/testhelpers"
	"github.com/pageza/recipe-genie/backend/internal/types"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *service.SessionService, *mocks.MockRecipeService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDB(t)
	sessions := service.NewSessionService("router-test-secret-0123456789abcdef", time.Hour)
	recipes := new(mocks.MockRecipeService)
	plans := service.NewMealPlanService(db)

	r := SetupRouter(Services{
		Recipes:   recipes,
		Favorites: service.NewFavoriteService(db),
		MealPlans: plans,
		Sessions:  sessions,
		Export:    service.NewPlanExportService(plans, nil, 0, testhelpers.DiscardLogger()),
	}, Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		DB:             db,
		Logger:         testhelpers.DiscardLogger(),
	})
	return r, sessions, recipes
}

func serve(r http.Handler, method, path, token string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouter(t *testing.T) {
	t.Run("should serve health without a session", func(t *testing.T) {
		r, _, _ := setupTestRouter(t)
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", "", "").Code)
	})

	t.Run("should serve recipes without a session", func(t *testing.T) {
		r, _, recipes := setupTestRouter(t)
		recipes.On("GetPopularRecipes", mock.Anything).Return([]types.RecipeSummary{}, nil)

		w := serve(r, http.MethodGet, "/api/v1/recipes/popular", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"recipes":[]}`, w.Body.String())
	})

	t.Run("should guard favorites and the planner", func(t *testing.T) {
		r, _, _ := setupTestRouter(t)

		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/v1/favorites", "", "").Code)
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/v1/planner", "bogus", "").Code)
	})

	t.Run("should accept an issued session", func(t *testing.T) {
		r, sessions, _ := setupTestRouter(t)
		session, err := sessions.IssueSession()
		require.NoError(t, err)

		w := serve(r, http.MethodPost, "/api/v1/favorites", session.Token, `{"recipe_id": 99}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		w = serve(r, http.MethodGet, "/api/v1/favorites", session.Token, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"recipe_ids":[99]}`, w.Body.String())
	})

	t.Run("should report export as unavailable without storage", func(t *testing.T) {
		r, sessions, _ := setupTestRouter(t)
		session, err := sessions.IssueSession()
		require.NoError(t, err)

		w := serve(r, http.MethodPost, "/api/v1/planner/export", session.Token, "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("should answer CORS preflight for allowed origins", func(t *testing.T) {
		r, _, _ := setupTestRouter(t)

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/recipes/popular", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

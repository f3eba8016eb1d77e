package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-genie/backend/internal/mocks"
	"github.com/pageza/recipe-genie/backend/internal/service"
	"github.com/pageza/recipe-genie/backend/internal/testhelpers"
	"github.com/pageza/recipe-genie/backend/internal/types"
)

func setupPlannerTestRouter(t *testing.T, owner uuid.UUID) (http.Handler, *mocks.MockPlanExportService) {
	t.Helper()
	db := testhelpers.SetupSQLiteDB(t)
	export := new(mocks.MockPlanExportService)

	r, v1 := newTestRouter(owner)
	NewPlannerHandler(service.NewMealPlanService(db), export).RegisterRoutes(v1)
	return r, export
}

func TestPlannerHandler(t *testing.T) {
	owner := uuid.New()
	pasta := types.RecipeSummary{ID: 21, Title: "Pasta", Image: "pasta.jpg"}

	t.Run("should plan a meal once per recipe and type", func(t *testing.T) {
		r, _ := setupPlannerTestRouter(t, owner)
		req := types.AddMealRequest{Type: "Dinner", Recipe: pasta}

		w := doRequest(t, r, http.MethodPost, "/api/v1/planner/2024-05-01", req)
		require.Equal(t, http.StatusCreated, w.Code)
		var first struct {
			Meal types.Meal `json:"meal"`
		}
		decode(t, w, &first)
		assert.Equal(t, types.MealDinner, first.Meal.Type)
		assert.Equal(t, "Pasta", first.Meal.Recipe.Title)

		w = doRequest(t, r, http.MethodPost, "/api/v1/planner/2024-05-01", req)
		require.Equal(t, http.StatusOK, w.Code)
		var second struct {
			Meal types.Meal `json:"meal"`
		}
		decode(t, w, &second)
		assert.Equal(t, first.Meal.ID, second.Meal.ID)

		w = doRequest(t, r, http.MethodGet, "/api/v1/planner/2024-05-01", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var day struct {
			Meals []types.Meal `json:"meals"`
		}
		decode(t, w, &day)
		assert.Len(t, day.Meals, 1)
	})

	t.Run("should drop the date after removing its last meal", func(t *testing.T) {
		r, _ := setupPlannerTestRouter(t, owner)

		w := doRequest(t, r, http.MethodPost, "/api/v1/planner/2024-05-02", types.AddMealRequest{Type: "lunch", Recipe: pasta})
		require.Equal(t, http.StatusCreated, w.Code)
		var added struct {
			Meal types.Meal `json:"meal"`
		}
		decode(t, w, &added)

		w = doRequest(t, r, http.MethodGet, "/api/v1/planner", nil)
		var plan struct {
			Plan types.MealPlan `json:"plan"`
		}
		decode(t, w, &plan)
		assert.Contains(t, plan.Plan, "2024-05-02")

		w = doRequest(t, r, http.MethodDelete, "/api/v1/planner/2024-05-02/"+added.Meal.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(t, r, http.MethodDelete, "/api/v1/planner/2024-05-02/"+added.Meal.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doRequest(t, r, http.MethodGet, "/api/v1/planner", nil)
		plan.Plan = nil
		decode(t, w, &plan)
		assert.NotContains(t, plan.Plan, "2024-05-02")
	})

	t.Run("should reject bad input", func(t *testing.T) {
		r, _ := setupPlannerTestRouter(t, owner)

		w := doRequest(t, r, http.MethodPost, "/api/v1/planner/05-01-2024", types.AddMealRequest{Type: "Dinner", Recipe: pasta})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(t, r, http.MethodPost, "/api/v1/planner/2024-05-01", types.AddMealRequest{Type: "Brunch", Recipe: pasta})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(t, r, http.MethodGet, "/api/v1/planner/not-a-date", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should export the plan", func(t *testing.T) {
		r, export := setupPlannerTestRouter(t, owner)
		export.On("ExportPlan", mock.Anything, owner).
			Return(&types.PlanExportResponse{URL: "https://bucket.test/plan.json", ExpiresIn: 900}, nil)

		w := doRequest(t, r, http.MethodPost, "/api/v1/planner/export", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp types.PlanExportResponse
		decode(t, w, &resp)
		assert.Equal(t, int64(900), resp.ExpiresIn)
		export.AssertExpectations(t)
	})

	t.Run("should answer 503 when export is not configured", func(t *testing.T) {
		r, export := setupPlannerTestRouter(t, owner)
		export.On("ExportPlan", mock.Anything, owner).Return(nil, service.ErrExportDisabled)

		w := doRequest(t, r, http.MethodPost, "/api/v1/planner/export", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("should hide storage failures", func(t *testing.T) {
		r, export := setupPlannerTestRouter(t, owner)
		export.On("ExportPlan", mock.Anything, owner).Return(nil, errors.New("s3: access denied"))

		w := doRequest(t, r, http.MethodPost, "/api/v1/planner/export", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "access denied")
	})
}

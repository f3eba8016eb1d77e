package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-genie/backend/internal/service"
	"github.com/pageza/recipe-genie/backend/internal/types"
)

// PlannerHandler serves the meal planner routes. All routes need a session.
type PlannerHandler struct {
	plans  service.IMealPlanService
	export service.IPlanExportService
}

func NewPlannerHandler(plans service.IMealPlanService, export service.IPlanExportService) *PlannerHandler {
	return &PlannerHandler{plans: plans, export: export}
}

func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup) {
	planner := router.Group("/planner")
	{
		planner.GET("", h.GetPlan)
		planner.POST("/export", h.ExportPlan)
		planner.GET("/:date", h.GetMeals)
		planner.POST("/:date", h.AddMeal)
		planner.DELETE("/:date/:mealId", h.RemoveMeal)
	}
}

func (h *PlannerHandler) GetPlan(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	plan, err := h.plans.Plan(c.Request.Context(), owner)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *PlannerHandler) GetMeals(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	meals, err := h.plans.MealsForDate(c.Request.Context(), owner, c.Param("date"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": c.Param("date"), "meals": meals})
}

func (h *PlannerHandler) AddMeal(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var req types.AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	meal, created, err := h.plans.AddMeal(c.Request.Context(), owner, c.Param("date"), req.Type, req.Recipe)
	if err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"meal": meal})
}

func (h *PlannerHandler) RemoveMeal(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	if err := h.plans.RemoveMeal(c.Request.Context(), owner, c.Param("date"), c.Param("mealId")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlannerHandler) ExportPlan(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	resp, err := h.export.ExportPlan(c.Request.Context(), owner)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package router

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-genie/backend/internal/api"
	"github.com/pageza/recipe-genie/backend/internal/middleware"
	"github.com/pageza/recipe-genie/backend/internal/service"
)

// Services are the application services the routes are served by
type Services struct {
	Recipes   service.IRecipeService
	Favorites service.IFavoriteService
	MealPlans service.IMealPlanService
	Sessions  service.ISessionService
	Export    service.IPlanExportService
}

// Options tune the router. SearchLimiter is optional; without it search and
// substitutions are not rate limited.
type Options struct {
	AllowedOrigins []string
	SearchLimiter  *middleware.RateLimiter
	DB             *gorm.DB
	Logger         *log.Logger
}

// SetupRouter configures the application routes
func SetupRouter(svc Services, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.ErrorHandler(opts.Logger))

	health := api.NewHealthHandler(opts.DB)
	router.GET("/health", health.HealthCheck)
	router.GET("/api/health", health.HealthCheck)

	v1 := router.Group("/api/v1")

	var limit []gin.HandlerFunc
	if opts.SearchLimiter != nil {
		limit = append(limit, opts.SearchLimiter.RateLimitMiddleware())
		api.RegisterRateLimitRoutes(v1, opts.SearchLimiter)
	}

	api.NewRecipeHandler(svc.Recipes).RegisterRoutes(v1, limit...)
	api.RegisterPresetRoutes(v1)
	api.NewSessionHandler(svc.Sessions).RegisterRoutes(v1)

	// Session routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(svc.Sessions))
	{
		api.NewFavoriteHandler(svc.Favorites, svc.Recipes).RegisterRoutes(protected)
		api.NewPlannerHandler(svc.MealPlans, svc.Export).RegisterRoutes(protected)
	}

	return router
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/recipe-genie/backend/config"
	"github.com/pageza/recipe-genie/backend/internal/cache"
	"github.com/pageza/recipe-genie/backend/internal/database"
	"github.com/pageza/recipe-genie/backend/internal/middleware"
	"github.com/pageza/recipe-genie/backend/internal/router"
	"github.com/pageza/recipe-genie/backend/internal/server"
	"github.com/pageza/recipe-genie/backend/internal/service"
	"github.com/pageza/recipe-genie/backend/internal/spoonacular"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.Environment.GinMode())
	logger.Printf("Starting Recipe Genie API (%s)", cfg.Environment)

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			// Rate limiting and the shared cache are optional
			logger.Printf("Warning: Failed to connect to Redis: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var recipeCache cache.Cache = cache.NewMemory()
	if cfg.CacheBackend == "redis" {
		if redisClient == nil {
			logger.Printf("Warning: Redis cache requested but Redis is unavailable; using in-memory cache")
		} else {
			recipeCache = cache.NewRedis(redisClient, logger)
		}
	}

	clientOpts := []spoonacular.Option{
		spoonacular.WithRequestsPerSecond(cfg.SpoonacularRPS),
		spoonacular.WithLogger(logger),
	}
	if cfg.SpoonacularBaseURL != "" {
		clientOpts = append(clientOpts, spoonacular.WithBaseURL(cfg.SpoonacularBaseURL))
	}
	upstream := spoonacular.NewClient(cfg.SpoonacularAPIKey, clientOpts...)
	if cfg.SpoonacularAPIKey == "" {
		logger.Printf("Warning: SPOONACULAR_API_KEY is not set; recipe routes will answer 503")
	}
	logger.Printf("Recipe cache: backend=%s ttl=%s browse-calls=%t", cfg.CacheBackend, cfg.CacheTTL, cfg.CacheBrowseCalls)

	recipes := service.NewRecipeService(upstream, recipeCache, service.RecipeOptions{
		Policy:           cache.NewPolicy(cfg.CacheTTL),
		CacheBrowseCalls: cfg.CacheBrowseCalls,
	}, logger)
	plans := service.NewMealPlanService(db)

	var store service.ObjectStore
	if cfg.ExportEnabled() {
		s3cfg, err := config.NewS3Config(context.Background(), cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			logger.Printf("Warning: Failed to configure S3, meal plan export disabled: %v", err)
		} else {
			store = s3cfg
		}
	}

	var limiter *middleware.RateLimiter
	if redisClient != nil && cfg.RateLimitRequests > 0 {
		limiter = middleware.NewSearchRateLimiter(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow, logger)
	}

	engine := router.SetupRouter(router.Services{
		Recipes:   recipes,
		Favorites: service.NewFavoriteService(db),
		MealPlans: plans,
		Sessions:  service.NewSessionService(cfg.JWTSecret, cfg.SessionTTL),
		Export:    service.NewPlanExportService(plans, store, service.DefaultExportLinkTTL, logger),
	}, router.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		SearchLimiter:  limiter,
		DB:             db,
		Logger:         logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.ServerHost, cfg.ServerPort, engine, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
	logger.Println("Server stopped")
}

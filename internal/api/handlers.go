package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-genie/backend/internal/database"
	"github.com/pageza/recipe-genie/backend/internal/middleware"
)

// HealthHandler reports whether the API and its database are reachable
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.db != nil {
		if err := database.HealthCheck(ctx, h.db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "database unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Recipe Genie API is running",
		"version": "v1.0.0",
	})
}

// RegisterRateLimitRoutes exposes the caller's remaining search quota
func RegisterRateLimitRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter) {
	router.GET("/rate-limits/search", func(c *gin.Context) {
		remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), middleware.ClientKey(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check rate limit"})
			return
		}

		cfg := limiter.Config()
		c.JSON(http.StatusOK, gin.H{
			"limit":      cfg.Limit,
			"remaining":  remaining,
			"reset_time": resetTime.Unix(),
			"window":     cfg.Window.String(),
		})
	})
}

package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// RateLimiter handles rate limiting using Redis. It protects the upstream
// quota from a single client hammering search or substitutions.
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
	now    func() time.Time
	logger *log.Logger
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig, logger *log.Logger) *RateLimiter {
	if logger == nil {
		logger = log.Default()
	}
	return &RateLimiter{
		redis:  redisClient,
		config: config,
		now:    time.Now,
		logger: logger,
	}
}

// NewSearchRateLimiter limits upstream-backed lookups per client
func NewSearchRateLimiter(redisClient *redis.Client, limit int, window time.Duration, logger *log.Logger) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    window,
		Limit:     limit,
		KeyPrefix: "rate_limit:search",
	}, logger)
}

// RateLimitMiddleware returns a Gin middleware that enforces rate limiting.
// Clients are identified by session owner when present, by IP otherwise.
func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := ClientKey(c)

		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), client)
		if err != nil {
			// A Redis outage must not take search down with it.
			rl.logger.Printf("[RateLimit] check failed for %s: %v", client, err)
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			retryAfter := int(resetTime.Sub(rl.now()).Seconds())
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the rate limit of %d requests per %v", rl.config.Limit, rl.config.Window),
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}

// IsAllowed counts a request from client in the current fixed window.
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, client string) (bool, int, time.Time, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	key := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, client, windowStart.Unix())

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

// GetRemainingRequests reports the requests client has left in the current
// window without counting one.
func (rl *RateLimiter) GetRemainingRequests(ctx context.Context, client string) (int, time.Time, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	key := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, client, windowStart.Unix())

	count, err := rl.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		return 0, time.Time{}, err
	}

	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, windowStart.Add(rl.config.Window), nil
}

// ClientKey identifies the caller the way RateLimitMiddleware does.
func ClientKey(c *gin.Context) string {
	if owner, ok := OwnerID(c); ok {
		return "owner:" + owner.String()
	}
	return "ip:" + c.ClientIP()
}

// Config returns the limiter settings.
func (rl *RateLimiter) Config() RateLimitConfig {
	return rl.config
}

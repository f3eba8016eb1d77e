package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// minProductionSecretLength is the shortest JWT secret accepted in production.
const minProductionSecretLength = 32

// ValidateConfig checks the loaded configuration. Errors found while parsing
// (prior) are reported together with the validation errors.
func ValidateConfig(cfg *Config, prior ...error) error {
	errs := append([]error(nil), prior...)
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		add("SERVER_PORT", "must be a port number, got %q", cfg.ServerPort)
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" {
			add("DB_HOST", "is required for the postgres driver")
		}
		if cfg.DBName == "" {
			add("DB_NAME", "is required for the postgres driver")
		}
		if cfg.DBUser == "" {
			add("DB_USER", "is required for the postgres driver")
		}
	case "sqlite":
		if cfg.DBPath == "" {
			add("DB_PATH", "is required for the sqlite driver")
		}
		if cfg.Environment == Production {
			add("DB_DRIVER", "sqlite is not supported in production")
		}
	default:
		add("DB_DRIVER", "must be postgres or sqlite, got %q", cfg.DBDriver)
	}

	if cfg.JWTSecret == "" {
		add("JWT_SECRET", "is required (environment, JWT_SECRET_FILE or jwt_secret secret)")
	} else if cfg.Environment == Production && len(cfg.JWTSecret) < minProductionSecretLength {
		add("JWT_SECRET", "must be at least %d characters in production", minProductionSecretLength)
	}
	if cfg.SessionTTL <= 0 {
		add("SESSION_TTL", "must be positive")
	}

	switch cfg.CacheBackend {
	case "memory":
	case "redis":
		if !cfg.RedisEnabled() {
			add("CACHE_BACKEND", "redis backend requires REDIS_URL or REDIS_HOST")
		}
	default:
		add("CACHE_BACKEND", "must be memory or redis, got %q", cfg.CacheBackend)
	}
	if cfg.CacheTTL <= 0 {
		add("CACHE_TTL", "must be positive")
	}

	if cfg.SpoonacularRPS < 0 {
		add("SPOONACULAR_RPS", "must not be negative")
	}

	if cfg.RateLimitRequests < 0 {
		add("RATE_LIMIT_REQUESTS", "must not be negative")
	}
	if cfg.RateLimitRequests > 0 && cfg.RateLimitWindow <= 0 {
		add("RATE_LIMIT_WINDOW", "must be positive when rate limiting is enabled")
	}

	return errors.Join(errs...)
}

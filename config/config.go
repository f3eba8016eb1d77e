package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort     string
	ServerHost     string
	AllowedOrigins []string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret  string
	SessionTTL time.Duration

	// Spoonacular configuration. An empty key is allowed at load time; every
	// recipe operation then fails with a configuration error.
	SpoonacularAPIKey  string
	SpoonacularBaseURL string
	SpoonacularRPS     float64

	// Cache configuration
	CacheBackend     string
	CacheTTL         time.Duration
	CacheBrowseCalls bool

	// Inbound rate limiting for search and substitution routes
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Meal plan export; disabled when S3Bucket is empty
	S3Bucket string
	S3Region string
}

// Defaults
const (
	DefaultServerPort        = "8080"
	DefaultServerHost        = "0.0.0.0"
	DefaultDBDriver          = "postgres"
	DefaultDBPath            = "recipe-genie.db"
	DefaultCacheBackend      = "memory"
	DefaultCacheTTL          = time.Hour
	DefaultSessionTTL        = 30 * 24 * time.Hour
	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = time.Minute
)

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{Environment: env}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	cfg.ServerPort = setting("SERVER_PORT", "server_port", DefaultServerPort)
	cfg.ServerHost = setting("SERVER_HOST", "server_host", DefaultServerHost)
	cfg.AllowedOrigins = splitList(setting("CORS_ALLOWED_ORIGINS", "", "*"))

	cfg.DBDriver = strings.ToLower(setting("DB_DRIVER", "db_driver", DefaultDBDriver))
	cfg.DBHost = setting("DB_HOST", "db_host", "localhost")
	cfg.DBPort = setting("DB_PORT", "db_port", "5432")
	cfg.DBUser = setting("DB_USER", "db_user", "")
	cfg.DBPassword = setting("DB_PASSWORD", "db_password", "")
	cfg.DBName = setting("DB_NAME", "db_name", "recipe_genie")
	cfg.DBSSLMode = setting("DB_SSL_MODE", "db_ssl_mode", "disable")
	cfg.DBPath = setting("DB_PATH", "", DefaultDBPath)

	cfg.RedisHost = setting("REDIS_HOST", "redis_host", "")
	cfg.RedisPort = setting("REDIS_PORT", "redis_port", "6379")
	cfg.RedisPassword = setting("REDIS_PASSWORD", "redis_password", "")
	cfg.RedisURL = setting("REDIS_URL", "redis_url", "")
	cfg.RedisDB = 0 // This is a constant, not a secret

	cfg.JWTSecret = setting("JWT_SECRET", "jwt_secret", "")
	cfg.SessionTTL = durationSetting("SESSION_TTL", DefaultSessionTTL, collect)

	cfg.SpoonacularAPIKey = setting("SPOONACULAR_API_KEY", "spoonacular_api_key", "")
	cfg.SpoonacularBaseURL = setting("SPOONACULAR_BASE_URL", "", "")
	cfg.SpoonacularRPS = floatSetting("SPOONACULAR_RPS", 0, collect)

	cfg.CacheBackend = strings.ToLower(setting("CACHE_BACKEND", "", DefaultCacheBackend))
	cfg.CacheTTL = durationSetting("CACHE_TTL", DefaultCacheTTL, collect)
	cfg.CacheBrowseCalls = boolSetting("CACHE_BROWSE_CALLS", true, collect)

	cfg.RateLimitRequests = intSetting("RATE_LIMIT_REQUESTS", DefaultRateLimitRequests, collect)
	cfg.RateLimitWindow = durationSetting("RATE_LIMIT_WINDOW", DefaultRateLimitWindow, collect)

	cfg.S3Bucket = setting("S3_BUCKET_NAME", "", "")
	cfg.S3Region = setting("AWS_REGION", "", "")

	if err := ValidateConfig(cfg, errs...); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// RedisEnabled reports whether a Redis server is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// ExportEnabled reports whether meal plan export is configured
func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}

// setting resolves a value from, in order: the environment variable, the file
// named by <envKey>_FILE, the Docker secret, and the default.
func setting(envKey, secretName, def string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if path := os.Getenv(envKey + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if v := strings.TrimSpace(string(data)); v != "" {
				return v
			}
		}
	}
	if secretName != "" {
		if v := readSecret(secretName); v != "" {
			return v
		}
	}
	return def
}

func durationSetting(envKey string, def time.Duration, collect func(error)) time.Duration {
	raw := setting(envKey, "", "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		collect(ValidationError{Field: envKey, Message: fmt.Sprintf("invalid duration %q", raw)})
		return def
	}
	return d
}

func intSetting(envKey string, def int, collect func(error)) int {
	raw := setting(envKey, "", "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		collect(ValidationError{Field: envKey, Message: fmt.Sprintf("invalid integer %q", raw)})
		return def
	}
	return n
}

func floatSetting(envKey string, def float64, collect func(error)) float64 {
	raw := setting(envKey, "", "")
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		collect(ValidationError{Field: envKey, Message: fmt.Sprintf("invalid number %q", raw)})
		return def
	}
	return f
}

func boolSetting(envKey string, def bool, collect func(error)) bool {
	raw := setting(envKey, "", "")
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		collect(ValidationError{Field: envKey, Message: fmt.Sprintf("invalid boolean %q", raw)})
		return def
	}
	return b
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

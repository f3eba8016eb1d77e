package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "recipe:cache:"

// Redis stores entries in Redis so they are shared across instances and
// survive a restart of a single process.
//
// Request URLs carry the API key, so keys are hashed before they are sent.
// Redis failures are logged and treated as a miss; they never fail a caller.
type Redis struct {
	client *redis.Client
	logger *log.Logger
}

// NewRedis wraps an existing client
func NewRedis(client *redis.Client, logger *log.Logger) *Redis {
	if logger == nil {
		logger = log.Default()
	}
	return &Redis{client: client, logger: logger}
}

// Get retrieves a payload from Redis
func (r *Redis) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	data, err := r.client.Get(ctx, RedisKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Printf("[Cache] redis get failed: %v", err)
		}
		return nil, false
	}
	return json.RawMessage(data), true
}

// Put saves a payload to Redis with the given expiry
func (r *Redis) Put(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := r.client.Set(ctx, RedisKey(key), []byte(payload), ttl).Err(); err != nil {
		r.logger.Printf("[Cache] redis set failed: %v", err)
	}
}

// RedisKey returns the Redis key under which a request URL is stored.
func RedisKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return redisKeyPrefix + hex.EncodeToString(sum[:])
}

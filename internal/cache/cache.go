// Package cache stores raw upstream payloads keyed by their request URL.
//
// Entries expire lazily: an entry whose age is at least its TTL is reported
// as a miss the next time it is read. There is no delete API and no eviction
// beyond that expiry.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultTTL is the expiry shared by every request kind unless overridden.
const DefaultTTL = time.Hour

// Cache maps a request signature to the payload it returned.
//
// Implementations must be safe for concurrent use. A Get followed by a Put is
// not atomic: two callers missing the same key may both write it.
type Cache interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	Put(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration)
}

// Kind names the class of upstream request a cache entry belongs to.
type Kind string

const (
	KindPopular     Kind = "popular"
	KindRecipeOfDay Kind = "recipe-of-the-day"
	KindDetails     Kind = "details"
	KindSearch      Kind = "search"
	KindBulk        Kind = "bulk"
	KindSubstitutes Kind = "substitutes"
)

// Policy resolves the TTL for a request kind.
type Policy struct {
	Default time.Duration
	PerKind map[Kind]time.Duration
}

// NewPolicy returns a policy that applies ttl to every kind.
func NewPolicy(ttl time.Duration) Policy {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return Policy{Default: ttl}
}

// TTL returns the expiry for kind.
func (p Policy) TTL(kind Kind) time.Duration {
	if d, ok := p.PerKind[kind]; ok && d > 0 {
		return d
	}
	if p.Default <= 0 {
		return DefaultTTL
	}
	return p.Default
}

// Entry is a cached payload and the time it was stored.
type Entry struct {
	Key      string
	Payload  json.RawMessage
	StoredAt time.Time
	TTL      time.Duration
}

// Expired reports whether the entry is no longer servable at now.
func (e Entry) Expired(now time.Time) bool {
	return now.Sub(e.StoredAt) >= e.TTL
}

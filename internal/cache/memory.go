package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Memory is a process-local, unbounded cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

// NewMemory creates an empty in-memory cache
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

// Get returns the payload for key unless it was never stored or has expired.
func (m *Memory) Get(_ context.Context, key string) (json.RawMessage, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if entry.Expired(m.now()) {
		m.mu.Lock()
		// Only drop it if nobody refreshed the key in between.
		if current, ok := m.entries[key]; ok && current.StoredAt.Equal(entry.StoredAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}

	return entry.Payload, true
}

// Put stores payload under key. The last writer wins.
func (m *Memory) Put(_ context.Context, key string, payload json.RawMessage, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m.mu.Lock()
	m.entries[key] = Entry{
		Key:      key,
		Payload:  payload,
		StoredAt: m.now(),
		TTL:      ttl,
	}
	m.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

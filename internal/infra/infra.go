// Package infra provides shared infrastructure components used across
// the application: result caching and per-client rate limiting.
package infra

import (
	"sync"
	"time"
)

// --- Simple in-memory cache ---

// CacheEntry holds a cached value with expiration.
type CacheEntry struct {
	Value     any
	ExpiresAt time.Time
}

// Cache is a simple thread-safe in-memory cache with TTL. Compute
// results are deterministic, so entries never need invalidation for
// correctness; the TTL only bounds memory. A background sweep drops
// expired entries between reads.
type Cache struct {
	mu        sync.RWMutex
	entries   map[string]CacheEntry
	ttl       time.Duration
	stopSweep chan struct{}
	stopOnce  sync.Once
}

// NewCache creates a new cache with the given default TTL.
func NewCache(ttl time.Duration) *Cache {
	c := &Cache{
		entries:   make(map[string]CacheEntry),
		ttl:       ttl,
		stopSweep: make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// Get retrieves a value from the cache. Returns nil, false if not found or expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Value, true
}

// Set stores a value in the cache with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = CacheEntry{
		Value:     value,
		ExpiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Cleanup removes expired entries. The sweep loop calls this
// periodically; it is exported for deterministic tests.
func (c *Cache) Cleanup() {
	c.mu.Lock()
	now := time.Now()
	for k, v := range c.entries {
		if now.After(v.ExpiresAt) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}

// Stop terminates the background sweep goroutine.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stopSweep) })
}

func (c *Cache) sweepLoop() {
	interval := c.ttl
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Cleanup()
		case <-c.stopSweep:
			return
		}
	}
}

// Len reports the number of entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// --- Per-client rate limiter ---

const (
	bucketIdleThreshold = 1 * time.Hour
	cleanupInterval     = 30 * time.Minute
)

type clientBucket struct {
	tokens     float64
	lastRefill time.Time
}

// RateLimiter is a token-bucket limiter keyed by client identity
// (typically the remote IP). Each client gets burst tokens refilled at
// a steady per-minute rate. Idle buckets are dropped in the background.
type RateLimiter struct {
	mu          sync.Mutex
	perMinute   float64
	burst       float64
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewRateLimiter creates a limiter allowing perMinute sustained
// requests per client with the given burst capacity.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	rl := &RateLimiter{
		perMinute:   float64(perMinute),
		burst:       float64(burst),
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow reports whether the client may proceed, consuming a token if so.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, ok := r.clients[client]
	if !ok {
		r.clients[client] = &clientBucket{tokens: r.burst - 1, lastRefill: now}
		return true
	}

	elapsed := now.Sub(bucket.lastRefill)
	bucket.tokens += elapsed.Minutes() * r.perMinute
	if bucket.tokens > r.burst {
		bucket.tokens = r.burst
	}
	bucket.lastRefill = now

	if bucket.tokens < 1 {
		return false
	}
	bucket.tokens--
	return true
}

// Stop terminates the background cleanup goroutine.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for client, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketIdleThreshold {
			delete(r.clients, client)
		}
	}
}

package cache

import (
	"context"
	"sync"
	"time"

	appquote "github.com/gestionale/backend/internal/application/quote"
	"github.com/google/uuid"
)

// quoteEntry holds a cached response with its expiration
type quoteEntry struct {
	resp      appquote.QuoteResponse
	expiresAt time.Time
}

// InMemoryQuoteCache caches quote responses in process memory. It is
// suitable for single-instance deployments and testing.
type InMemoryQuoteCache struct {
	mu        sync.RWMutex
	entries   map[uuid.UUID]quoteEntry
	ttl       time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryQuoteCache creates an in-memory quote cache.
// It starts a background goroutine to clean up expired entries.
func NewInMemoryQuoteCache(ttl time.Duration) *InMemoryQuoteCache {
	c := &InMemoryQuoteCache{
		entries:  make(map[uuid.UUID]quoteEntry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop()

	return c
}

// Get returns the cached response for a quote, or nil on a cache miss
func (c *InMemoryQuoteCache) Get(ctx context.Context, id uuid.UUID) (*appquote.QuoteResponse, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[id]
	if !exists || time.Now().After(e.expiresAt) {
		return nil, nil
	}

	resp := e.resp
	return &resp, nil
}

// Set stores a quote response with the configured TTL
func (c *InMemoryQuoteCache) Set(ctx context.Context, resp appquote.QuoteResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[resp.ID] = quoteEntry{
		resp:      resp,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

// Invalidate removes a quote from the cache
func (c *InMemoryQuoteCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (c *InMemoryQuoteCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired entries
func (c *InMemoryQuoteCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes expired entries from the cache
func (c *InMemoryQuoteCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for id, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, id)
		}
	}
}

// Size returns the number of entries in the cache (for testing/monitoring)
func (c *InMemoryQuoteCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Ensure InMemoryQuoteCache implements the application cache port
var _ appquote.Cache = (*InMemoryQuoteCache)(nil)

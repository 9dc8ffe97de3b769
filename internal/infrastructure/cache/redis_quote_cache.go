package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	appquote "github.com/gestionale/backend/internal/application/quote"
	"github.com/gestionale/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultQuoteKeyPrefix = "quote:response:"

// RedisQuoteCache caches quote responses in Redis. It is suitable for
// deployments where multiple instances must share cached reads.
type RedisQuoteCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisQuoteCache creates a Redis-backed quote cache and verifies the connection
func NewRedisQuoteCache(cfg config.RedisConfig, ttl time.Duration) (*RedisQuoteCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisQuoteCache{
		client:    client,
		keyPrefix: defaultQuoteKeyPrefix,
		ttl:       ttl,
	}, nil
}

// NewRedisQuoteCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisQuoteCacheWithClient(client *redis.Client, ttl time.Duration) *RedisQuoteCache {
	return &RedisQuoteCache{
		client:    client,
		keyPrefix: defaultQuoteKeyPrefix,
		ttl:       ttl,
	}
}

// Get returns the cached response for a quote, or nil on a cache miss
func (c *RedisQuoteCache) Get(ctx context.Context, id uuid.UUID) (*appquote.QuoteResponse, error) {
	data, err := c.client.Get(ctx, c.keyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached quote: %w", err)
	}

	var resp appquote.QuoteResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		// A corrupt entry is treated as a miss and dropped
		c.client.Del(ctx, c.keyPrefix+id.String())
		return nil, nil
	}

	return &resp, nil
}

// Set stores a quote response with the configured TTL
func (c *RedisQuoteCache) Set(ctx context.Context, resp appquote.QuoteResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode quote for cache: %w", err)
	}

	if err := c.client.Set(ctx, c.keyPrefix+resp.ID.String(), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache quote: %w", err)
	}

	return nil
}

// Invalidate removes a quote from the cache
func (c *RedisQuoteCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, c.keyPrefix+id.String()).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached quote: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisQuoteCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisQuoteCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisQuoteCache implements the application cache port
var _ appquote.Cache = (*RedisQuoteCache)(nil)

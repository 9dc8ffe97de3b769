package cache

import (
	"fmt"
	"time"

	appquote "github.com/gestionale/backend/internal/application/quote"
	"github.com/gestionale/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// QuoteCacheFactory creates quote caches based on configuration
type QuoteCacheFactory struct {
	redisConfig           config.RedisConfig
	ttl                   time.Duration
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// QuoteCacheFactoryOption is a functional option for configuring the factory
type QuoteCacheFactoryOption func(*QuoteCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) QuoteCacheFactoryOption {
	return func(f *QuoteCacheFactory) {
		f.logger = logger
	}
}

// WithTTL sets the cache entry lifetime
func WithTTL(ttl time.Duration) QuoteCacheFactoryOption {
	return func(f *QuoteCacheFactory) {
		f.ttl = ttl
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory cache
// when Redis is unavailable. Default is true (allow fallback).
func WithInMemoryFallback(allow bool) QuoteCacheFactoryOption {
	return func(f *QuoteCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewQuoteCacheFactory creates a new factory
func NewQuoteCacheFactory(cfg config.RedisConfig, opts ...QuoteCacheFactoryOption) *QuoteCacheFactory {
	f := &QuoteCacheFactory{
		redisConfig:           cfg,
		ttl:                   15 * time.Minute,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed quote cache
func (f *QuoteCacheFactory) CreateRedisCache() (appquote.Cache, error) {
	cache, err := NewRedisQuoteCache(f.redisConfig, f.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis quote cache: %w", err)
	}
	return cache, nil
}

// CreateInMemoryCache creates an in-memory quote cache.
// WARNING: in-memory caches do not share state across process instances,
// which can serve stale reads in multi-instance deployments.
func (f *QuoteCacheFactory) CreateInMemoryCache() appquote.Cache {
	return NewInMemoryQuoteCache(f.ttl)
}

// CreateCache creates a quote cache based on whether Redis is available.
// It tries Redis first and falls back to in-memory if Redis is unavailable
// and fallback is allowed.
func (f *QuoteCacheFactory) CreateCache() (appquote.Cache, error) {
	cache, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis quote cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for quote cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory quote cache. "+
		"Multi-instance deployments may serve stale reads.",
		zap.Error(err),
	)
	return f.CreateInMemoryCache(), nil
}

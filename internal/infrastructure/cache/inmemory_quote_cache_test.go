package cache

import (
	"context"
	"testing"
	"time"

	appquote "github.com/gestionale/backend/internal/application/quote"
	"github.com/gestionale/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configForTest() config.RedisConfig {
	return config.RedisConfig{Host: "localhost", Port: 6379}
}

func testResponse() appquote.QuoteResponse {
	return appquote.QuoteResponse{
		ID:          uuid.New(),
		Number:      "PRV-2026-042",
		ClientID:    uuid.New(),
		IssuedBy:    "alcafer",
		Description: "Cancellata in ferro battuto",
		TotalAmount: decimal.NewFromInt(3500),
		Status:      "accepted",
	}
}

func TestInMemoryQuoteCache_SetAndGet(t *testing.T) {
	c := NewInMemoryQuoteCache(time.Minute)
	defer c.Close()

	ctx := context.Background()
	resp := testResponse()

	require.NoError(t, c.Set(ctx, resp))

	got, err := c.Get(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, resp.Number, got.Number)
	assert.True(t, resp.TotalAmount.Equal(got.TotalAmount))
}

func TestInMemoryQuoteCache_MissReturnsNil(t *testing.T) {
	c := NewInMemoryQuoteCache(time.Minute)
	defer c.Close()

	got, err := c.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInMemoryQuoteCache_Invalidate(t *testing.T) {
	c := NewInMemoryQuoteCache(time.Minute)
	defer c.Close()

	ctx := context.Background()
	resp := testResponse()

	require.NoError(t, c.Set(ctx, resp))
	require.NoError(t, c.Invalidate(ctx, resp.ID))

	got, err := c.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInMemoryQuoteCache_ExpiredEntryIsAMiss(t *testing.T) {
	c := NewInMemoryQuoteCache(10 * time.Millisecond)
	defer c.Close()

	ctx := context.Background()
	resp := testResponse()

	require.NoError(t, c.Set(ctx, resp))
	time.Sleep(20 * time.Millisecond)

	got, err := c.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInMemoryQuoteCache_OverwriteUpdatesEntry(t *testing.T) {
	c := NewInMemoryQuoteCache(time.Minute)
	defer c.Close()

	ctx := context.Background()
	resp := testResponse()
	require.NoError(t, c.Set(ctx, resp))

	resp.Status = "rejected"
	require.NoError(t, c.Set(ctx, resp))

	got, err := c.Get(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "rejected", got.Status)
	assert.Equal(t, 1, c.Size())
}

func TestInMemoryQuoteCache_CloseIsIdempotent(t *testing.T) {
	c := NewInMemoryQuoteCache(time.Minute)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestQuoteCacheFactory_InMemory(t *testing.T) {
	f := NewQuoteCacheFactory(configForTest(), WithTTL(time.Minute))

	cache := f.CreateInMemoryCache()
	require.NotNil(t, cache)

	resp := testResponse()
	require.NoError(t, cache.Set(context.Background(), resp))

	got, err := cache.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, resp.ID, got.ID)
}

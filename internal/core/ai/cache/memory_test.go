package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"
)

func testConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(testConfig(10, time.Minute))
	defer c.Close()
	ctx := context.Background()

	_, err := c.Get(ctx, "k1")
	assert.ErrorIs(t, err, common.ErrCacheDisabled)

	require.NoError(t, c.Set(ctx, "k1", "v1"))
	got, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(testConfig(10, 10*time.Millisecond))
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", "v1"))
	time.Sleep(20 * time.Millisecond)

	_, err := c.Get(ctx, "k1")
	assert.ErrorIs(t, err, common.ErrCacheDisabled)
}

func TestMemoryCacheLRUEviction(t *testing.T) {
	c := NewMemoryCache(testConfig(2, time.Minute))
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", "1"))
	require.NoError(t, c.Set(ctx, "b", "2"))

	// 提高 a 的使用次數，滿載時 b 先被淘汰
	_, err := c.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "c", "3"))

	_, err = c.Get(ctx, "b")
	assert.ErrorIs(t, err, common.ErrCacheDisabled)

	got, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestMemoryCacheStats(t *testing.T) {
	c := NewMemoryCache(testConfig(10, time.Minute))
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v"))
	_, _ = c.Get(ctx, "k")
	_, _ = c.Get(ctx, "missing")

	stats := c.Stats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 1, stats["size"])
}

func TestNewSelectsBackend(t *testing.T) {
	cfg := testConfig(10, time.Minute)
	c, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, c)
	_ = c.Close()

	cfg.Cache.Enabled = false
	c, err = New(cfg)
	require.NoError(t, err)
	assert.Nil(t, c)

	cfg.Cache.Enabled = true
	cfg.Cache.Backend = "bogus"
	_, err = New(cfg)
	assert.Error(t, err)
}

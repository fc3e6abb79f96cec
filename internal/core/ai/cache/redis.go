package cache

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"
)

// RedisCache 以 Redis 為後端的快取，多實例部署時共用
type RedisCache struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisCache 建立 Redis 快取並驗證連線
func NewRedisCache(cfg *config.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{
		client: client,
		config: cfg,
	}, nil
}

// Get 取出快取值
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	data, err := c.client.Get(ctx, c.namespaced(key)).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("redis")
			return "", common.ErrCacheDisabled
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	common.LogCacheHit("redis")
	return data, nil
}

// Set 寫入快取值並套用存活時間
func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, c.namespaced(key), value, c.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// namespaced 加上鍵前綴避免與其他服務衝突
func (c *RedisCache) namespaced(key string) string {
	return fmt.Sprintf("recipes:response:%s", key)
}

// Close 關閉 Redis 連線
func (c *RedisCache) Close() error {
	return c.client.Close()
}

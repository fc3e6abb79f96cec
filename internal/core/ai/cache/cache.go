package cache

import (
	"context"
	"fmt"

	"recipe-suggester/internal/infrastructure/config"
)

// Cache 食譜回應快取的統一介面
// 鍵為請求指紋，值為序列化後的食譜 JSON
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// New 依設定選擇快取後端
// 停用時回傳 nil，呼叫端需自行判空
func New(cfg *config.Config) (Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	switch cfg.Cache.Backend {
	case "redis":
		return NewRedisCache(&cfg.Cache)
	case "memory", "":
		return NewMemoryCache(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}

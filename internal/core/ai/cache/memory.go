package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"
)

// MemoryCache 行程內快取，帶存活時間與 LRU 淘汰
type MemoryCache struct {
	config *config.Config
	mu     sync.Mutex
	store  map[string]cacheEntry
	stats  cacheStats
	done   chan struct{}
}

// cacheEntry 快取條目
type cacheEntry struct {
	value       string
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// cacheStats 快取統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

// NewMemoryCache 建立行程內快取並啟動背景清理
func NewMemoryCache(cfg *config.Config) *MemoryCache {
	c := &MemoryCache{
		config: cfg,
		store:  make(map[string]cacheEntry),
		done:   make(chan struct{}),
	}

	go c.startCleanup()

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", cfg.Cache.MaxSize),
		zap.Duration("存活時間", cfg.Cache.TTL),
		zap.Duration("清理間隔", cfg.Cache.CleanupInterval),
	)
	return c
}

// Get 取出快取值，未命中或過期回傳 ErrCacheDisabled 作為 miss 標記
func (c *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.store[key]
	if !exists {
		c.stats.misses++
		common.LogCacheMiss("memory")
		return "", common.ErrCacheDisabled
	}

	if time.Now().After(entry.expiresAt) {
		delete(c.store, key)
		c.stats.evictions++
		c.stats.misses++
		common.LogDebug("快取已過期", zap.String("鍵", key))
		return "", common.ErrCacheDisabled
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	c.store[key] = entry
	c.stats.hits++
	common.LogCacheHit("memory")
	return entry.value, nil
}

// Set 寫入快取值，容量滿時先清過期再走 LRU
func (c *MemoryCache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.store) >= c.config.Cache.MaxSize {
		evicted := c.cleanupLocked()
		if evicted > 0 {
			common.LogDebug("快取清理執行", zap.Int("清理數量", evicted))
		}
		if len(c.store) >= c.config.Cache.MaxSize {
			c.evictLRULocked()
		}
		if len(c.store) >= c.config.Cache.MaxSize {
			c.stats.errors++
			common.LogWarn("快取已滿", zap.Int("目前容量", len(c.store)))
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	c.store[key] = cacheEntry{
		value:      value,
		expiresAt:  now.Add(c.config.Cache.TTL),
		createdAt:  now,
		lastAccess: now,
	}
	return nil
}

// startCleanup 背景清理過期條目
func (c *MemoryCache) startCleanup() {
	ticker := time.NewTicker(c.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.cleanupLocked()
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

// cleanupLocked 移除過期條目，呼叫端需持有鎖
func (c *MemoryCache) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
			count++
			c.stats.evictions++
		}
	}
	return count
}

// evictLRULocked 淘汰最少使用的條目，呼叫端需持有鎖
func (c *MemoryCache) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range c.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(c.store, oldestKey)
		c.stats.evictions++
		common.LogDebug("快取已淘汰(LRU)", zap.String("鍵", oldestKey))
	}
}

// Stats 快取統計
func (c *MemoryCache) Stats() map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.stats.hits + c.stats.misses
	ratio := 0.0
	if total > 0 {
		ratio = float64(c.stats.hits) / float64(total)
	}
	return map[string]interface{}{
		"size":      len(c.store),
		"max_size":  c.config.Cache.MaxSize,
		"hits":      c.stats.hits,
		"misses":    c.stats.misses,
		"evictions": c.stats.evictions,
		"errors":    c.stats.errors,
		"hit_ratio": ratio,
	}
}

// Close 停止背景清理並清空快取
func (c *MemoryCache) Close() error {
	close(c.done)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]cacheEntry)
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", c.stats.hits),
		zap.Int64("未命中次數", c.stats.misses),
		zap.Int64("淘汰次數", c.stats.evictions),
	)
	return nil
}

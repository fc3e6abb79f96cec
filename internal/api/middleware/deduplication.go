package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-suggester/internal/pkg/common"
)

// deduper 記錄最近看過的請求指紋
type deduper struct {
	mu       sync.Mutex
	requests map[string]time.Time
	window   time.Duration
}

func newDeduper(window time.Duration) *deduper {
	d := &deduper{
		requests: make(map[string]time.Time),
		window:   window,
	}
	go d.cleanupLoop()
	return d
}

func (d *deduper) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		d.mu.Lock()
		for k, t := range d.requests {
			if now.Sub(t) > 10*d.window {
				delete(d.requests, k)
			}
		}
		d.mu.Unlock()
	}
}

// seen 檢查指紋是否在時間窗內出現過，未出現則記錄
func (d *deduper) seen(fingerprint string) bool {
	now := time.Now()
	d.mu.Lock()
	defer d.mu.Unlock()

	if last, ok := d.requests[fingerprint]; ok && now.Sub(last) <= d.window {
		return true
	}
	d.requests[fingerprint] = now
	return false
}

// Deduplication 短時間內相同 POST 請求去重
// 指紋為方法、路徑加上請求體的 SHA-256
func Deduplication(window time.Duration) gin.HandlerFunc {
	if window <= 0 {
		window = time.Second
	}
	d := newDeduper(window)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}
			hash := sha256.Sum256(body)
			fingerprint += ":" + hex.EncodeToString(hash[:])
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		if d.seen(fingerprint) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Request too frequent",
				"code":  common.ErrCodeTooManyRequests,
			})
			return
		}

		c.Next()
	}
}

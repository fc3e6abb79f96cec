package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// Check GET /health
// 存活探測，回報版本與運行時間
func Check(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": version,
			"uptime":  time.Since(startTime).String(),
		})
	}
}

// Readiness GET /ready
// 就緒檢查，確認儲存層可用後才回報 ready
func Readiness(ping func(c *gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ping(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
		})
	}
}

// Liveness GET /live
// 存活檢查，行程還在就回應
func Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

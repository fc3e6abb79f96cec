package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"recipe-suggester/internal/api/handlers/health"
	"recipe-suggester/internal/api/handlers/recipe"
	"recipe-suggester/internal/api/middleware"
	"recipe-suggester/internal/core/generate"
	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/infrastructure/storage"
	"recipe-suggester/internal/pkg/common"
)

// 請求體上限，食材清單用不到更大的空間
const maxBodySize = 1 << 20

// NewRouter 組裝路由與中間件
func NewRouter(cfg *config.Config, service *generate.Service, store storage.Store) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(requestid.New(requestid.WithGenerator(common.GenerateUUID)))
	r.Use(middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.BodySizeLimit(maxBodySize))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	r.Use(middleware.Deduplication(cfg.DedupWindow))

	r.GET("/health", health.Check(cfg.App.Version))
	r.GET("/ready", health.Readiness(func(c *gin.Context) error {
		_, err := store.ListRecipes(c.Request.Context())
		return err
	}))
	r.GET("/live", health.Liveness)

	h := recipe.NewHandler(service, store)
	v1 := r.Group("/api/v1")
	{
		recipes := v1.Group("/recipes")
		{
			recipes.POST("/generate", h.Generate)
			recipes.GET("", h.List)
			recipes.GET("/saved", h.Saved)
			recipes.POST("/save", h.Save)
			recipes.DELETE("/saved/:id", h.Unsave)
		}
	}

	return r
}

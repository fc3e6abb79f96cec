package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"recipe-suggester/internal/api"
	"recipe-suggester/internal/core/ai/cache"
	"recipe-suggester/internal/core/ai/provider"
	"recipe-suggester/internal/core/engine"
	"recipe-suggester/internal/core/generate"
	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/infrastructure/storage"
	"recipe-suggester/internal/pkg/common"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("服務啟動中",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
	)

	store, err := storage.New(cfg)
	if err != nil {
		common.LogFatal("儲存層初始化失敗", zap.Error(err))
	}
	defer store.Close()

	responseCache, err := cache.New(cfg)
	if err != nil {
		common.LogFatal("快取初始化失敗", zap.Error(err))
	}
	if responseCache != nil {
		defer responseCache.Close()
	}

	// 依優先順序組出可用的供應商
	var providers []provider.Provider
	if cfg.OpenAI.APIKey != "" {
		providers = append(providers, provider.NewOpenAIProvider(cfg.OpenAI))
	}
	if cfg.OpenRouter.APIKey != "" {
		providers = append(providers, provider.NewOpenRouterProvider(cfg.OpenRouter))
	}
	if len(providers) == 0 {
		common.LogWarn("未配置任何 AI 供應商，僅使用規則引擎")
	}

	service := generate.NewService(providers, engine.New(), responseCache)
	router := api.NewRouter(cfg, service, store)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("HTTP 服務監聽中", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogFatal("HTTP 服務異常結束", zap.Error(err))
		}
	}()

	// 等待關閉信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("收到關閉信號，開始優雅關閉")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("優雅關閉失敗", zap.Error(err))
	}
	common.LogInfo("服務已關閉")
}

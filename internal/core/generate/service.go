package generate

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"recipe-suggester/internal/core/ai/cache"
	"recipe-suggester/internal/core/ai/provider"
	"recipe-suggester/internal/core/engine"
	"recipe-suggester/internal/pkg/common"
)

// 食譜來源標記
const (
	SourceCache = "cache"
	SourceRules = "rules"
)

// Service 食譜產生協調器
// 依序嘗試各 AI 供應商，全數失敗時退回規則引擎，
// 因此 Generate 永遠會給出結果
type Service struct {
	providers []provider.Provider
	engine    *engine.Engine
	cache     cache.Cache
}

// NewService 建立協調器
// providers 依優先順序排列，cache 可為 nil
func NewService(providers []provider.Provider, eng *engine.Engine, c cache.Cache) *Service {
	return &Service{
		providers: providers,
		engine:    eng,
		cache:     c,
	}
}

// Generate 產生三道食譜並回報來源
// 來源為供應商名稱、"cache" 或 "rules"
func (s *Service) Generate(ctx context.Context, req common.GenerateRequest) ([]common.Recipe, string) {
	req.Normalize()

	key := Fingerprint(req)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var recipes []common.Recipe
			if err := common.ParseJSON(cached, &recipes); err == nil && len(recipes) == 3 {
				return recipes, SourceCache
			}
			common.LogWarn("快取內容無法解析，忽略", zap.String("鍵", key))
		}
	}

	prompt := BuildPrompt(req)
	for _, p := range s.providers {
		start := time.Now()
		raw, err := p.Generate(ctx, prompt)
		common.LogProviderCall(p.Name(), time.Since(start), err)
		if err != nil {
			continue
		}

		recipes, err := ParseRecipes(raw, req)
		if err != nil {
			common.LogWarn("AI 回應解析失敗，換下一個供應商",
				zap.String("provider", p.Name()),
				zap.Error(err),
			)
			continue
		}

		s.storeInCache(ctx, key, recipes)
		return recipes, p.Name()
	}

	common.LogInfo("所有 AI 供應商皆不可用，改用規則引擎")
	return s.engine.Generate(req), SourceRules
}

// storeInCache 寫入快取，失敗只記錄不影響回應
func (s *Service) storeInCache(ctx context.Context, key string, recipes []common.Recipe) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(recipes)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data)); err != nil {
		common.LogWarn("快取寫入失敗", zap.Error(err))
	}
}

package generate

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-suggester/internal/core/ai/provider"
	"recipe-suggester/internal/core/engine"
	"recipe-suggester/internal/pkg/common"
)

func providers(ps ...provider.Provider) []provider.Provider { return ps }

// stubProvider 固定回應的供應商
type stubProvider struct {
	name  string
	raw   string
	err   error
	calls int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.calls++
	return p.raw, p.err
}

// stubCache 行程內 map，不做過期
type stubCache struct {
	store map[string]string
	sets  int
}

func newStubCache() *stubCache {
	return &stubCache{store: map[string]string{}}
}

func (c *stubCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := c.store[key]; ok {
		return v, nil
	}
	return "", common.ErrCacheDisabled
}

func (c *stubCache) Set(ctx context.Context, key, value string) error {
	c.sets++
	c.store[key] = value
	return nil
}

func (c *stubCache) Close() error { return nil }

func testEngine() *engine.Engine {
	return engine.NewWithRand(rand.New(rand.NewSource(1)))
}

func testRequest() common.GenerateRequest {
	return common.GenerateRequest{
		Ingredients: []string{"chicken", "rice"},
		Cuisine:     "indian",
	}
}

func TestGenerateUsesFirstHealthyProvider(t *testing.T) {
	first := &stubProvider{name: "openai", raw: validEnvelope()}
	second := &stubProvider{name: "openrouter", raw: validEnvelope()}
	svc := NewService(providers(first, second), testEngine(), nil)

	recipes, source := svc.Generate(context.Background(), testRequest())

	require.Len(t, recipes, 3)
	assert.Equal(t, "openai", source)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "第一個成功就不該打第二個")
}

func TestGenerateFallsThroughOnError(t *testing.T) {
	first := &stubProvider{name: "openai", err: errors.New("rate limited")}
	second := &stubProvider{name: "openrouter", raw: validEnvelope()}
	svc := NewService(providers(first, second), testEngine(), nil)

	recipes, source := svc.Generate(context.Background(), testRequest())

	require.Len(t, recipes, 3)
	assert.Equal(t, "openrouter", source)
}

func TestGenerateFallsThroughOnBadJSON(t *testing.T) {
	first := &stubProvider{name: "openai", raw: "not json at all"}
	second := &stubProvider{name: "openrouter", raw: validEnvelope()}
	svc := NewService(providers(first, second), testEngine(), nil)

	_, source := svc.Generate(context.Background(), testRequest())

	assert.Equal(t, "openrouter", source)
	assert.Equal(t, 1, first.calls, "解析失敗不重試同一供應商")
}

func TestGenerateNeverFails(t *testing.T) {
	first := &stubProvider{name: "openai", err: errors.New("down")}
	second := &stubProvider{name: "openrouter", err: errors.New("down")}
	svc := NewService(providers(first, second), testEngine(), nil)

	recipes, source := svc.Generate(context.Background(), testRequest())

	require.Len(t, recipes, 3)
	assert.Equal(t, SourceRules, source)
	for _, r := range recipes {
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Instructions)
	}
}

func TestGenerateNoProvidersUsesRules(t *testing.T) {
	svc := NewService(nil, testEngine(), nil)

	recipes, source := svc.Generate(context.Background(), testRequest())

	require.Len(t, recipes, 3)
	assert.Equal(t, SourceRules, source)
}

func TestGenerateCachesAIResponses(t *testing.T) {
	p := &stubProvider{name: "openai", raw: validEnvelope()}
	c := newStubCache()
	svc := NewService(providers(p), testEngine(), c)

	_, source := svc.Generate(context.Background(), testRequest())
	require.Equal(t, "openai", source)
	require.Equal(t, 1, c.sets)

	// 第二次相同請求直接命中快取，不再呼叫供應商
	recipes, source := svc.Generate(context.Background(), testRequest())
	assert.Equal(t, SourceCache, source)
	assert.Len(t, recipes, 3)
	assert.Equal(t, 1, p.calls)
}

func TestGenerateRuleFallbackNotCached(t *testing.T) {
	p := &stubProvider{name: "openai", err: errors.New("down")}
	c := newStubCache()
	svc := NewService(providers(p), testEngine(), c)

	_, source := svc.Generate(context.Background(), testRequest())

	assert.Equal(t, SourceRules, source)
	assert.Equal(t, 0, c.sets, "規則引擎結果不進快取")
}

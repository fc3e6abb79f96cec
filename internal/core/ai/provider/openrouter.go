package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"recipe-suggester/internal/infrastructure/config"
)

// OpenRouterProvider 透過 OpenRouter 代理的免費模型產生食譜
// 作為 OpenAI 之後的第二順位
type OpenRouterProvider struct {
	cfg    config.ProviderConfig
	client *resty.Client
}

// NewOpenRouterProvider 建立 OpenRouter 供應商
func NewOpenRouterProvider(cfg config.ProviderConfig) *OpenRouterProvider {
	client := resty.New().
		SetBaseURL("https://openrouter.ai/api/v1").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("HTTP-Referer", "https://recipe-suggester.app").
		SetHeader("X-Title", "Recipe Suggester").
		SetTimeout(cfg.Timeout)

	return &OpenRouterProvider{
		cfg:    cfg,
		client: client,
	}
}

// Name 供應商名稱
func (p *OpenRouterProvider) Name() string { return "openrouter" }

// Generate 呼叫 OpenRouter 的 chat/completions
// OpenRouter 上的免費模型不保證支援 response_format，
// 改以 prompt 約束輸出格式
func (p *OpenRouterProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]interface{}{
		"model": p.cfg.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"max_tokens": p.cfg.MaxTokens,
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("OpenRouter API returned error: %s", resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenRouter response")
	}
	return result.Choices[0].Message.Content, nil
}

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"recipe-suggester/internal/infrastructure/config"
)

// OpenAIProvider 透過 OpenAI Chat Completions API 產生食譜
type OpenAIProvider struct {
	cfg    config.ProviderConfig
	client *resty.Client
}

// NewOpenAIProvider 建立 OpenAI 供應商
func NewOpenAIProvider(cfg config.ProviderConfig) *OpenAIProvider {
	client := resty.New().
		SetBaseURL("https://api.openai.com/v1").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetTimeout(cfg.Timeout)

	return &OpenAIProvider{
		cfg:    cfg,
		client: client,
	}
}

// Name 供應商名稱
func (p *OpenAIProvider) Name() string { return "openai" }

// Generate 呼叫 Chat Completions，要求模型以 JSON 物件回覆
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]interface{}{
		"model": p.cfg.Model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a professional chef assistant. Always respond with valid JSON only.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.7,
		"max_tokens":  p.cfg.MaxTokens,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenAI: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("OpenAI API returned error: %s", resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenAI response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenAI response")
	}
	return result.Choices[0].Message.Content, nil
}

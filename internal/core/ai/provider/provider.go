package provider

import "context"

// Provider AI 供應商的統一介面
// 回傳值為模型原始文字輸出，JSON 解析交由上層處理
type Provider interface {
	// Name 供應商名稱，用於日誌與回應標記
	Name() string
	// Generate 送出 prompt 並取回模型回應
	Generate(ctx context.Context, prompt string) (string, error)
}

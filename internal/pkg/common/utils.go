package common

import "github.com/google/uuid"

// GenerateUUID 生成 UUID，作為請求 ID 來源
func GenerateUUID() string {
	return uuid.New().String()
}

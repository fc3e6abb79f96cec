package common

import (
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// 預定義錯誤代碼
const (
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429
	ErrCodeInternalError   = "INTERNAL_ERROR"    // 500
)

// 業務錯誤
var (
	ErrRecipeNotFound  = NewError("RECIPE_NOT_FOUND", "食譜不存在", http.StatusNotFound, nil)
	ErrInvalidRecipeID = NewError("INVALID_RECIPE_ID", "無效的食譜 ID", http.StatusBadRequest, nil)
	ErrCacheFull       = NewError("CACHE_FULL", "緩存已滿", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled   = NewError("CACHE_DISABLED", "緩存已禁用", http.StatusServiceUnavailable, nil)
)

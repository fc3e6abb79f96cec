package storage

import (
	"context"
	"fmt"

	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"
)

// Store 食譜儲存層介面
// 所有實作都要保證 ID 單調遞增且儲存/取消儲存為冪等操作
type Store interface {
	// CreateRecipe 寫入食譜並配發 ID
	CreateRecipe(ctx context.Context, recipe common.Recipe) (common.Recipe, error)
	// GetRecipe 依 ID 取食譜，找不到時回傳 common.ErrRecipeNotFound
	GetRecipe(ctx context.Context, id int) (common.Recipe, error)
	// ListRecipes 依 ID 序回傳所有食譜
	ListRecipes(ctx context.Context) ([]common.Recipe, error)
	// SavedRecipes 依 ID 序回傳已儲存的食譜
	SavedRecipes(ctx context.Context) ([]common.Recipe, error)
	// SaveRecipe 標記食譜為已儲存，重複儲存不報錯
	SaveRecipe(ctx context.Context, id int) (common.Recipe, error)
	// RemoveSavedRecipe 取消儲存標記，重複取消不報錯
	RemoveSavedRecipe(ctx context.Context, id int) error
	// Close 釋放資源
	Close() error
}

// New 依設定選擇儲存後端
func New(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		return NewSQLiteStore(cfg.Storage.Path)
	case "memory", "":
		return NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

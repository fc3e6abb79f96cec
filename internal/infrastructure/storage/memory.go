package storage

import (
	"context"
	"sort"
	"sync"

	"recipe-suggester/internal/pkg/common"
)

// MemStore 行程內儲存，開發與測試預設
type MemStore struct {
	mu      sync.RWMutex
	recipes map[int]common.Recipe
	nextID  int
}

// NewMemStore 建立空的行程內儲存
func NewMemStore() *MemStore {
	return &MemStore{
		recipes: make(map[int]common.Recipe),
		nextID:  1,
	}
}

// CreateRecipe 寫入食譜並配發遞增 ID
func (s *MemStore) CreateRecipe(ctx context.Context, recipe common.Recipe) (common.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe.ID = s.nextID
	s.nextID++
	s.recipes[recipe.ID] = recipe
	return recipe, nil
}

// GetRecipe 依 ID 取食譜
func (s *MemStore) GetRecipe(ctx context.Context, id int) (common.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipe, ok := s.recipes[id]
	if !ok {
		return common.Recipe{}, common.ErrRecipeNotFound
	}
	return recipe, nil
}

// ListRecipes 依 ID 序回傳所有食譜
func (s *MemStore) ListRecipes(ctx context.Context) ([]common.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(func(common.Recipe) bool { return true }), nil
}

// SavedRecipes 依 ID 序回傳已儲存的食譜
func (s *MemStore) SavedRecipes(ctx context.Context) ([]common.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(func(r common.Recipe) bool { return r.Saved }), nil
}

// SaveRecipe 標記為已儲存，冪等
func (s *MemStore) SaveRecipe(ctx context.Context, id int) (common.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, ok := s.recipes[id]
	if !ok {
		return common.Recipe{}, common.ErrRecipeNotFound
	}
	recipe.Saved = true
	s.recipes[id] = recipe
	return recipe, nil
}

// RemoveSavedRecipe 取消儲存標記，冪等
// 不存在的 id 視為已取消，不回報錯誤
func (s *MemStore) RemoveSavedRecipe(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, ok := s.recipes[id]
	if !ok {
		return nil
	}
	recipe.Saved = false
	s.recipes[id] = recipe
	return nil
}

// Close 無資源可釋放
func (s *MemStore) Close() error { return nil }

// sortedLocked 過濾並依 ID 排序，呼叫端需持有讀鎖
func (s *MemStore) sortedLocked(keep func(common.Recipe) bool) []common.Recipe {
	out := make([]common.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

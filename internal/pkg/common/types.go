package common

import "strings"

// DietaryFlags 飲食標記
// 六個獨立布林值，對應常見飲食限制
type DietaryFlags struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`
	LowCarb    bool `json:"lowCarb"`
	DairyFree  bool `json:"dairyFree"`
	Keto       bool `json:"keto"`
}

// Recipe 食譜
// 欄位名稱與儲存格式一致，id 在寫入儲存層時才指派
type Recipe struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Ingredients  []string     `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	Cuisine      string       `json:"cuisine"`
	Calories     int          `json:"calories"`
	CookTime     string       `json:"cookTime"`
	ImageURL     string       `json:"imageUrl"`
	ChefNote     string       `json:"chefNote,omitempty"`
	DietaryFlags DietaryFlags `json:"dietaryFlags"`
	Saved        bool         `json:"saved"`
}

// GenerateRequest 食譜生成請求
type GenerateRequest struct {
	Ingredients []string `json:"ingredients"`
	Cuisine     string   `json:"cuisine"`
	Dietary     []string `json:"dietary,omitempty"`
}

// Normalize 去除空白項並修剪前後空白
func (r *GenerateRequest) Normalize() {
	out := r.Ingredients[:0]
	for _, ing := range r.Ingredients {
		if trimmed := strings.TrimSpace(ing); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	r.Ingredients = out
	r.Cuisine = strings.TrimSpace(r.Cuisine)
	dietary := r.Dietary[:0]
	for _, d := range r.Dietary {
		if trimmed := strings.TrimSpace(d); trimmed != "" {
			dietary = append(dietary, trimmed)
		}
	}
	r.Dietary = dietary
}

// FormatIngredientList 格式化食材列表（用於 prompt）
func FormatIngredientList(ingredients []string) string {
	return strings.Join(ingredients, ", ")
}

// Merge 合併飲食標記：other（使用者選擇）為真時覆蓋
// 產生器推斷的標記只能補充，不能移除使用者明確要求的限制
func (f DietaryFlags) Merge(other DietaryFlags) DietaryFlags {
	merged := f
	if other.Vegetarian {
		merged.Vegetarian = true
	}
	if other.Vegan {
		merged.Vegan = true
	}
	if other.GlutenFree {
		merged.GlutenFree = true
	}
	if other.LowCarb {
		merged.LowCarb = true
	}
	if other.DairyFree {
		merged.DairyFree = true
	}
	if other.Keto {
		merged.Keto = true
	}
	return merged
}

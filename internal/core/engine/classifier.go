package engine

import "strings"

// Classification 食材分類結果
// 同一項食材可能同時落在多個類別
type Classification struct {
	Proteins   []string
	Vegetables []string
	Grains     []string
	Spices     []string
}

// HasProtein 是否含任何蛋白質
func (c Classification) HasProtein() bool { return len(c.Proteins) > 0 }

// HasVegetable 是否含任何蔬菜
func (c Classification) HasVegetable() bool { return len(c.Vegetables) > 0 }

// HasGrain 是否含任何穀物
func (c Classification) HasGrain() bool { return len(c.Grains) > 0 }

// Classify 用子字串比對將食材分到四個類別
// 比對大小寫不敏感，結果順序跟隨輸入順序
func Classify(ingredients []string) Classification {
	var c Classification
	for _, ing := range ingredients {
		lower := strings.ToLower(ing)
		if containsAny(lower, proteinTerms) {
			c.Proteins = append(c.Proteins, ing)
		}
		if containsAny(lower, vegetableTerms) {
			c.Vegetables = append(c.Vegetables, ing)
		}
		if containsAny(lower, grainTerms) {
			c.Grains = append(c.Grains, ing)
		}
		if containsAny(lower, spiceTerms) {
			c.Spices = append(c.Spices, ing)
		}
	}
	return c
}

// containsAny s 是否包含 terms 中任一子字串，s 需為小寫
func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// matchAny 回傳 items 中包含任一 term 的項目，比對大小寫不敏感
func matchAny(items []string, terms []string) []string {
	var out []string
	for _, it := range items {
		if containsAny(strings.ToLower(it), terms) {
			out = append(out, it)
		}
	}
	return out
}

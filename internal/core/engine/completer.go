package engine

import "strings"

// CompleteIngredients 補齊一份食譜會用到的食材
// 使用者提供的食材永遠排最前面，之後依序補上鹽、胡椒、
// 菜系基底食材與菜型追加食材，重複者略過
func CompleteIngredients(ingredients []string, cuisine, recipeType string) []string {
	out := make([]string, 0, len(ingredients)+8)
	out = append(out, ingredients...)

	for _, staple := range []string{"salt", "pepper"} {
		if !hasExact(out, staple) {
			out = append(out, staple)
		}
	}

	support, ok := supportByCuisine[strings.ToLower(strings.TrimSpace(cuisine))]
	if !ok {
		return out
	}

	for _, cand := range support.base {
		if !hasSimilar(out, cand) {
			out = append(out, cand)
		}
	}
	for _, cand := range support.byType[recipeType] {
		if !hasSimilar(out, cand) {
			out = append(out, cand)
		}
	}
	return out
}

// hasExact 大小寫不敏感的完全比對
func hasExact(items []string, target string) bool {
	for _, it := range items {
		if strings.EqualFold(strings.TrimSpace(it), target) {
			return true
		}
	}
	return false
}

// hasSimilar 近似比對：取候選項逗號前的主體，
// 只要任何既有食材包含該主體就視為重複
func hasSimilar(items []string, candidate string) bool {
	key := strings.ToLower(strings.TrimSpace(candidate))
	if i := strings.Index(key, ","); i >= 0 {
		key = strings.TrimSpace(key[:i])
	}
	for _, it := range items {
		if strings.Contains(strings.ToLower(it), key) {
			return true
		}
	}
	return false
}

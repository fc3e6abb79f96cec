package engine

import "strings"

// InferType 依食材與菜系推斷菜型標籤
// 規則由上而下逐條檢查，命中即回傳：
//  1. 含米 -> 菜系對應的米飯料理
//  2. 含麵類關鍵字 -> 菜系對應的麵食
//  3. 含湯底關鍵字 -> 菜系對應的湯品
//  4. 含麵粉/麵團 -> 菜系對應的餅類
//  5. 有蛋白質 -> 菜系主菜
//  6. 只有蔬菜 -> 菜系蔬食
//  7. 食材少於四項且只有香料 -> 開胃小品
//  8. 都不符合 -> "recipe"
func InferType(ingredients []string, cuisine string) string {
	cuisine = strings.ToLower(strings.TrimSpace(cuisine))
	c := Classify(ingredients)

	joined := strings.ToLower(strings.Join(ingredients, " "))

	if containsAny(joined, riceKeywords) {
		if label, ok := riceDishByCuisine[cuisine]; ok {
			return label
		}
		if cuisine == "american" && c.HasProtein() {
			return "rice casserole"
		}
		return "rice dish"
	}

	if containsAny(joined, pastaKeywords) {
		if cuisine == "american" {
			if strings.Contains(joined, "cheese") {
				return "mac and cheese"
			}
			return "noodle dish"
		}
		if label, ok := noodleDishByCuisine[cuisine]; ok {
			return label
		}
		return "noodle dish"
	}

	if containsAny(joined, soupKeywords) {
		if label, ok := soupDishByCuisine[cuisine]; ok {
			return label
		}
		return "soup"
	}

	if containsAny(joined, breadKeywords) {
		if cuisine == "italian" {
			if c.HasProtein() {
				return "pizza"
			}
			return "flatbread"
		}
		if label, ok := breadDishByCuisine[cuisine]; ok {
			return label
		}
		return "bread dish"
	}

	if c.HasProtein() {
		switch cuisine {
		case "indian":
			if len(c.Spices) > 0 {
				return "curry"
			}
			return "masala"
		case "chinese":
			if c.HasVegetable() {
				return "stir-fry"
			}
			return "roast"
		case "italian":
			if c.HasVegetable() {
				return "sauté"
			}
			return "roast"
		case "mexican":
			return "taco filling"
		case "japanese":
			return "teriyaki"
		case "american":
			return "grill"
		default:
			return "main dish"
		}
	}

	if c.HasVegetable() {
		if label, ok := vegetableDishByCuisine[cuisine]; ok {
			return label
		}
		return "vegetable dish"
	}

	if len(ingredients) < 4 && len(c.Spices) > 0 && !c.HasGrain() {
		if label, ok := appetizerByCuisine[cuisine]; ok {
			return label
		}
		return "appetizer"
	}

	return "recipe"
}

package engine

import (
	"strings"

	"recipe-suggester/internal/pkg/common"
)

// ParseDietary 把使用者輸入的偏好字串轉成飲食標記
// 比對經過修剪與小寫化，未知的字串直接忽略
func ParseDietary(tags []string) common.DietaryFlags {
	var flags common.DietaryFlags
	for _, tag := range tags {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		switch {
		case matchSynonym(normalized, "vegetarian"):
			flags.Vegetarian = true
		case matchSynonym(normalized, "vegan"):
			flags.Vegan = true
		case matchSynonym(normalized, "glutenFree"):
			flags.GlutenFree = true
		case matchSynonym(normalized, "lowCarb"):
			flags.LowCarb = true
		case matchSynonym(normalized, "dairyFree"):
			flags.DairyFree = true
		case matchSynonym(normalized, "keto"):
			flags.Keto = true
		}
	}
	return flags
}

func matchSynonym(tag, key string) bool {
	for _, syn := range dietarySynonyms[key] {
		if tag == syn {
			return true
		}
	}
	return false
}

// InferFlags 從完整食材清單推斷飲食標記
// 規則保守：只有在完全沒出現相關食材時才標記為真
func InferFlags(ingredients []string) common.DietaryFlags {
	joined := strings.ToLower(strings.Join(ingredients, " "))

	hasMeat := containsAny(joined, meatTerms)
	hasDairy := containsAny(joined, dairyTerms)
	hasEgg := strings.Contains(joined, "egg")
	hasGluten := containsAny(joined, glutenFull)
	hasGrain := containsAny(joined, grainTerms)
	hasSweet := containsAny(joined, sweetTerms)

	return common.DietaryFlags{
		Vegetarian: !hasMeat,
		Vegan:      !hasMeat && !hasDairy && !hasEgg,
		GlutenFree: !hasGluten,
		DairyFree:  !hasDairy,
		LowCarb:    !hasGrain && !hasSweet,
		Keto:       !hasGrain && !hasSweet && hasDairy,
	}
}

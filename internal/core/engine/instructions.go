package engine

import (
	"fmt"
	"strings"
)

// BuildInstructions 依菜型與菜系合成逐步做法
// 咖哩、快炒與義大利麵有專屬範本，其餘走通用範本
func BuildInstructions(ingredients []string, cuisine, recipeType string) []string {
	cuisine = strings.ToLower(strings.TrimSpace(cuisine))

	proteins := matchAny(ingredients, proteinTerms)
	others := mainVegetables(ingredients, proteins)

	proteinText := joinNatural(proteins, "the protein")
	vegText := joinNatural(others, "the vegetables")

	switch {
	case recipeType == "curry" || cuisine == "indian":
		return []string{
			"Heat oil in a large pot over medium heat.",
			"Add cumin seeds and let them sizzle for 30 seconds.",
			"Add chopped onion and cook until golden brown, about 5 minutes.",
			"Stir in garlic, ginger and ground spices, cooking until fragrant.",
			fmt.Sprintf("Add %s and sear on all sides.", proteinText),
			fmt.Sprintf("Add %s along with chopped tomatoes.", vegText),
			"Pour in water or stock, cover and simmer until tender.",
			"Season with salt, garnish with fresh cilantro.",
			"Serve hot with rice or naan.",
		}
	case recipeType == "stir-fry" || recipeType == "fried rice" || cuisine == "chinese":
		return []string{
			"Prepare all ingredients before you start, cutting everything into bite-sized pieces.",
			"Heat a wok or large skillet over high heat until smoking.",
			"Add oil and swirl to coat the surface.",
			fmt.Sprintf("Add %s and stir-fry until nearly cooked through.", proteinText),
			fmt.Sprintf("Add %s and toss for 2 to 3 minutes, keeping them crisp.", vegText),
			"Pour in soy sauce and sesame oil, tossing to combine.",
			"Taste and adjust seasoning with salt and pepper.",
			"Serve immediately while hot.",
		}
	case recipeType == "pasta" || cuisine == "italian":
		return []string{
			"Bring a large pot of salted water to a boil.",
			"Cook the pasta until al dente, then reserve a cup of pasta water before draining.",
			"Meanwhile, heat olive oil in a wide pan over medium heat.",
			"Add garlic and cook until fragrant, about 1 minute.",
			fmt.Sprintf("Add %s and cook through.", proteinText),
			fmt.Sprintf("Stir in %s and simmer briefly.", vegText),
			"Toss the drained pasta in the pan, loosening with pasta water as needed.",
			"Finish with basil and grated cheese, then serve.",
		}
	default:
		steps := []string{
			"Gather and prep all ingredients, washing and chopping as needed.",
			"Heat oil in a large pan over medium heat.",
		}
		// 沒有蛋白質就略過煎炒步驟
		if len(proteins) > 0 {
			steps = append(steps, fmt.Sprintf("Add %s and cook until browned.", proteinText))
		}
		return append(steps,
			fmt.Sprintf("Add %s and cook until softened.", vegText),
			"Season with salt, pepper and your chosen spices.",
			"Add a splash of water or stock and let everything cook together.",
			"Simmer until flavors meld and everything is cooked through.",
			"Taste, adjust seasoning and serve warm.",
		)
	}
}

// mainVegetables 取出做法中要點名的配料：
// 排除蛋白質與香料/基底類食材後剩下的項目
func mainVegetables(ingredients, proteins []string) []string {
	isProtein := make(map[string]bool, len(proteins))
	for _, p := range proteins {
		isProtein[p] = true
	}
	var out []string
	for _, ing := range ingredients {
		if isProtein[ing] {
			continue
		}
		if containsAny(strings.ToLower(ing), stapleTerms) {
			continue
		}
		out = append(out, ing)
	}
	return out
}

// joinNatural 把清單接成口語片段，如 "chicken and tomatoes"
// 清單為空時回傳 fallback
func joinNatural(items []string, fallback string) string {
	switch len(items) {
	case 0:
		return fallback
	case 1:
		return strings.ToLower(items[0])
	}
	lowered := make([]string, len(items))
	for i, it := range items {
		lowered[i] = strings.ToLower(it)
	}
	return strings.Join(lowered[:len(lowered)-1], ", ") + " and " + lowered[len(lowered)-1]
}

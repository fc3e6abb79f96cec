package engine

import (
	"fmt"
	"sort"
	"strings"

	"recipe-suggester/internal/pkg/common"
)

// preset 三種產出風格的設定
type preset struct {
	titlePrefixes []string
	calorieOffset int
	descTemplates []string
	chefNotes     []string
}

var presets = []preset{
	{
		titlePrefixes: []string{"Classic", "Traditional", "Authentic"},
		calorieOffset: 0,
		descTemplates: []string{
			"A comforting %s %s built around %s, cooked the way it has always been done.",
			"This %s %s lets %s shine with time-honored seasoning and technique.",
		},
		chefNotes: []string{
			"Let the dish rest for a few minutes before serving so the flavors settle.",
			"Toast whole spices briefly before grinding for a deeper aroma.",
		},
	},
	{
		titlePrefixes: []string{"Modern", "Fusion", "Contemporary"},
		calorieOffset: 25,
		descTemplates: []string{
			"A modern %s %s that pairs %s with an unexpected twist.",
			"This creative %s %s reimagines %s for adventurous eaters.",
		},
		chefNotes: []string{
			"Try finishing with a squeeze of citrus to brighten the richer notes.",
			"Swap in any seasonal vegetable you have on hand, the base holds up well.",
		},
	},
	{
		titlePrefixes: []string{"Quick", "Easy", "Weeknight"},
		calorieOffset: -25,
		descTemplates: []string{
			"A fast %s %s that gets %s on the table without fuss.",
			"This streamlined %s %s keeps prep minimal while %s stays front and center.",
		},
		chefNotes: []string{
			"Prep every ingredient before the pan heats up, the cooking moves fast.",
			"Leftovers keep well, pack them for lunch the next day.",
		},
	},
}

// Generate 依請求產出三道風格各異的食譜
// 三道菜共用同一個推斷菜型，但標題、描述、卡路里與圖片各自不同
func (e *Engine) Generate(req common.GenerateRequest) []common.Recipe {
	cuisine := strings.ToLower(strings.TrimSpace(req.Cuisine))
	recipeType := InferType(req.Ingredients, cuisine)
	userFlags := ParseDietary(req.Dietary)

	// 只排序使用者提供的食材，補齊的配料固定接在後面
	sorted := append([]string(nil), req.Ingredients...)
	sortProteinFirst(sorted)

	recipes := make([]common.Recipe, 0, len(presets))
	for i, p := range presets {
		ingredients := CompleteIngredients(sorted, cuisine, recipeType)

		calories := e.EstimateCalories(ingredients, recipeType) + p.calorieOffset
		if calories < caloriesFloor {
			calories = caloriesFloor
		}

		lead := leadIngredient(ingredients)
		desc := fmt.Sprintf(p.descTemplates[e.rng.Intn(len(p.descTemplates))],
			cuisine, recipeType, strings.ToLower(lead))

		recipes = append(recipes, common.Recipe{
			Title:        buildTitle(p.titlePrefixes[e.rng.Intn(len(p.titlePrefixes))], cuisine, lead, recipeType),
			Description:  desc,
			Ingredients:  ingredients,
			Instructions: BuildInstructions(ingredients, cuisine, recipeType),
			Cuisine:      cuisine,
			Calories:     calories,
			CookTime:     e.EstimateCookTime(ingredients, recipeType),
			ImageURL:     ImageFor(cuisine, i),
			ChefNote:     p.chefNotes[e.rng.Intn(len(p.chefNotes))],
			DietaryFlags: InferFlags(ingredients).Merge(userFlags),
		})
	}
	return recipes
}

// sortProteinFirst 穩定排序，蛋白質排前面其餘維持原順序
func sortProteinFirst(ingredients []string) {
	sort.SliceStable(ingredients, func(i, j int) bool {
		pi := containsAny(strings.ToLower(ingredients[i]), proteinTerms)
		pj := containsAny(strings.ToLower(ingredients[j]), proteinTerms)
		return pi && !pj
	})
}

// leadIngredient 取排序後的第一項作為標題主角
func leadIngredient(ingredients []string) string {
	if len(ingredients) == 0 {
		return "Vegetable"
	}
	lead := ingredients[0]
	if i := strings.Index(lead, ","); i >= 0 {
		lead = lead[:i]
	}
	return titleCase(strings.TrimSpace(lead))
}

func buildTitle(prefix, cuisine, lead, recipeType string) string {
	return fmt.Sprintf("%s %s %s %s", prefix, titleCase(cuisine), lead, titleCase(recipeType))
}

// titleCase 每個單字字首大寫
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ImageFor 依菜系與食譜序位挑選示意圖
func ImageFor(cuisine string, index int) string {
	images, ok := foodImagesByCuisine[strings.ToLower(strings.TrimSpace(cuisine))]
	if !ok || len(images) == 0 {
		images = defaultFoodImages
	}
	if index < 0 {
		index = 0
	}
	return images[index%len(images)]
}

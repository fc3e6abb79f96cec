package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-suggester/internal/pkg/common"
)

func TestGenerateReturnsThreeRecipes(t *testing.T) {
	e := newTestEngine(11)
	recipes := e.Generate(common.GenerateRequest{
		Ingredients: []string{"chicken", "rice", "tomato"},
		Cuisine:     "indian",
	})

	require.Len(t, recipes, 3)
	for i, r := range recipes {
		assert.NotEmpty(t, r.Title, "recipe %d", i)
		assert.NotEmpty(t, r.Description)
		assert.NotEmpty(t, r.Instructions)
		assert.NotEmpty(t, r.CookTime)
		assert.NotEmpty(t, r.ChefNote)
		assert.GreaterOrEqual(t, r.Calories, caloriesFloor)
		assert.Equal(t, "indian", r.Cuisine)
		assert.False(t, r.Saved)
	}
}

func TestGenerateProteinLeadsIngredientList(t *testing.T) {
	e := newTestEngine(12)
	recipes := e.Generate(common.GenerateRequest{
		Ingredients: []string{"tomato", "rice", "chicken"},
		Cuisine:     "indian",
	})

	for _, r := range recipes {
		assert.Equal(t, "chicken", r.Ingredients[0], "蛋白質應排最前")
		assert.Contains(t, r.Title, "Chicken")
		assert.Contains(t, r.Title, "Biryani")
	}
}

func TestGenerateImagesCycleByCuisine(t *testing.T) {
	e := newTestEngine(13)
	recipes := e.Generate(common.GenerateRequest{
		Ingredients: []string{"noodles", "pork"},
		Cuisine:     "chinese",
	})

	require.Len(t, recipes, 3)
	for i, r := range recipes {
		assert.Equal(t, foodImagesByCuisine["chinese"][i], r.ImageURL)
	}
}

func TestGenerateUnknownCuisineUsesDefaultImages(t *testing.T) {
	e := newTestEngine(14)
	recipes := e.Generate(common.GenerateRequest{
		Ingredients: []string{"chicken"},
		Cuisine:     "martian",
	})

	for i, r := range recipes {
		assert.Equal(t, defaultFoodImages[i%len(defaultFoodImages)], r.ImageURL)
	}
}

func TestGenerateSupportItemsFollowUserIngredients(t *testing.T) {
	// 補齊的配料（如蛋）不得插到使用者食材前面
	e := newTestEngine(16)
	recipes := e.Generate(common.GenerateRequest{
		Ingredients: []string{"rice", "cabbage"},
		Cuisine:     "chinese",
	})

	require.Len(t, recipes, 3)
	for _, r := range recipes {
		require.GreaterOrEqual(t, len(r.Ingredients), 2)
		assert.Equal(t, "rice", r.Ingredients[0])
		assert.Equal(t, "cabbage", r.Ingredients[1])
		assert.Contains(t, r.Ingredients[2:], "eggs")
	}
}

func TestGenerateVeganTofuStirFry(t *testing.T) {
	e := newTestEngine(17)
	recipes := e.Generate(common.GenerateRequest{
		Ingredients: []string{"tofu", "broccoli", "soy sauce"},
		Cuisine:     "chinese",
		Dietary:     []string{"vegan"},
	})

	require.Len(t, recipes, 3)
	for _, r := range recipes {
		assert.Contains(t, strings.ToLower(r.Title), "stir-fry")
		assert.True(t, r.DietaryFlags.Vegan)
		assert.True(t, r.DietaryFlags.Vegetarian)
		assert.False(t, r.DietaryFlags.GlutenFree)
		assert.Equal(t, "tofu", r.Ingredients[0])
	}
}

func TestGenerateVeganChineseScenario(t *testing.T) {
	e := newTestEngine(15)
	recipes := e.Generate(common.GenerateRequest{
		Ingredients: []string{"broccoli", "carrot"},
		Cuisine:     "chinese",
		Dietary:     []string{"vegan"},
	})

	require.Len(t, recipes, 3)
	for _, r := range recipes {
		assert.True(t, r.DietaryFlags.Vegan)
		assert.True(t, r.DietaryFlags.Vegetarian)
		assert.Contains(t, r.Ingredients, "salt")
		assert.Contains(t, r.Ingredients, "pepper")
		// 補齊的醬油讓無麩質推斷為否，使用者也沒另行指定
		assert.False(t, r.DietaryFlags.GlutenFree)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	req := common.GenerateRequest{
		Ingredients: []string{"salmon", "rice"},
		Cuisine:     "japanese",
	}
	a := newTestEngine(99).Generate(req)
	b := newTestEngine(99).Generate(req)
	assert.Equal(t, a, b)
}

func TestGenerateCalorieOffsetsAcrossPresets(t *testing.T) {
	// 同種子跑兩次取同一組擾動，檢查三道菜的卡路里不全相同
	e := newTestEngine(21)
	recipes := e.Generate(common.GenerateRequest{
		Ingredients: []string{"chicken", "rice"},
		Cuisine:     "indian",
	})

	require.Len(t, recipes, 3)
	distinct := map[int]bool{}
	for _, r := range recipes {
		distinct[r.Calories] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Fried Rice", titleCase("fried rice"))
	assert.Equal(t, "Stir-fry", titleCase("stir-fry"))
}

func TestGenerateTitlesDifferAcrossPresets(t *testing.T) {
	e := newTestEngine(31)
	recipes := e.Generate(common.GenerateRequest{
		Ingredients: []string{"beef", "pepper"},
		Cuisine:     "mexican",
	})

	prefixes := []string{
		strings.Split(recipes[0].Title, " ")[0],
		strings.Split(recipes[1].Title, " ")[0],
		strings.Split(recipes[2].Title, " ")[0],
	}
	assert.Contains(t, presets[0].titlePrefixes, prefixes[0])
	assert.Contains(t, presets[1].titlePrefixes, prefixes[1])
	assert.Contains(t, presets[2].titlePrefixes, prefixes[2])
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteIngredientsUserFirst(t *testing.T) {
	got := CompleteIngredients([]string{"chicken", "rice"}, "indian", "biryani")

	assert.Equal(t, "chicken", got[0])
	assert.Equal(t, "rice", got[1])
	assert.Contains(t, got, "salt")
	assert.Contains(t, got, "pepper")
	assert.Contains(t, got, "garam masala")
	assert.Contains(t, got, "saffron")
}

func TestCompleteIngredientsSaltDedupIsExact(t *testing.T) {
	got := CompleteIngredients([]string{"Salt", "black pepper"}, "american", "grill")

	count := 0
	for _, ing := range got {
		if ing == "salt" || ing == "Salt" {
			count++
		}
	}
	assert.Equal(t, 1, count, "salt 只應出現一次: %v", got)

	// "black pepper" 與 "pepper" 完全比對不同，兩者並存
	assert.Contains(t, got, "black pepper")
	assert.Contains(t, got, "pepper")
}

func TestCompleteIngredientsSimilarDedup(t *testing.T) {
	got := CompleteIngredients([]string{"garlic cloves", "tofu"}, "chinese", "stir-fry")

	// 使用者已有 garlic cloves，菜系基底的 garlic 視為重複
	for _, ing := range got {
		assert.NotEqual(t, "garlic", ing)
	}
	assert.Contains(t, got, "soy sauce")
	assert.Contains(t, got, "cornstarch")
}

func TestCompleteIngredientsUnknownCuisine(t *testing.T) {
	got := CompleteIngredients([]string{"chicken"}, "martian", "main dish")

	assert.Equal(t, []string{"chicken", "salt", "pepper"}, got)
}

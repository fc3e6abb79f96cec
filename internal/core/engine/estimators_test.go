package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEngine(seed int64) *Engine {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

func TestEstimateCaloriesWithinJitterRange(t *testing.T) {
	e := newTestEngine(1)
	// biryani 基準 550，雞肉不屬精瘦詞（chicken breast 才是），無其他修正
	for i := 0; i < 50; i++ {
		cal := e.EstimateCalories([]string{"rice", "chicken thigh"}, "biryani")
		assert.GreaterOrEqual(t, cal, 495)
		assert.LessOrEqual(t, cal, 605)
	}
}

func TestEstimateCaloriesAdjustments(t *testing.T) {
	e := newTestEngine(2)
	lean := e.EstimateCalories([]string{"tofu"}, "stir-fry")
	fatty := e.EstimateCalories([]string{"beef", "butter"}, "stir-fry")
	// 瘦肉 −20 對上肥肉 +40 加乳脂 +50，即使含擾動也應分得開
	assert.Greater(t, fatty, lean)
}

func TestCalorieAdjustmentsPerIngredient(t *testing.T) {
	// 修正量按符合的食材逐項累計，不是每類只算一次
	assert.Equal(t, 40, calorieAdjustments([]string{"beef"}))
	assert.Equal(t, 120, calorieAdjustments([]string{"beef", "bacon", "sausage"}))
	assert.Equal(t, -40, calorieAdjustments([]string{"tofu", "shrimp"}))
	assert.Equal(t, 100, calorieAdjustments([]string{"cream", "butter"}))
}

func TestEstimateCaloriesFloor(t *testing.T) {
	e := newTestEngine(3)
	// salsa 基準 150，五項蔬菜扣 60，擾動後仍需拉回下限
	ingredients := []string{"tomato", "onion", "pepper", "cucumber", "corn"}
	for i := 0; i < 50; i++ {
		assert.Equal(t, caloriesFloor, e.EstimateCalories(ingredients, "salsa"))
	}
}

func TestEstimateCaloriesDeterministicWithSeed(t *testing.T) {
	in := []string{"chicken", "rice", "cream"}
	a := newTestEngine(42).EstimateCalories(in, "curry")
	b := newTestEngine(42).EstimateCalories(in, "curry")
	assert.Equal(t, a, b)
}

func TestEstimateCookTimeFormats(t *testing.T) {
	e := newTestEngine(4)
	// stir-fry 基準 15 分鐘，永遠不會跨過一小時
	got := e.EstimateCookTime([]string{"chicken", "broccoli"}, "stir-fry")
	assert.True(t, strings.HasSuffix(got, "minutes"), "got %q", got)
	assert.NotContains(t, got, "hour")

	// biryani 加牛肉一定超過一小時
	got = e.EstimateCookTime([]string{"rice", "beef"}, "biryani")
	assert.Contains(t, got, "1 hour")
}

func TestEstimateCookTimeRiceSurcharge(t *testing.T) {
	// 米飯食材搭配非米飯菜型加 10 分鐘，米飯菜型不加
	e1 := newTestEngine(7)
	e2 := newTestEngine(7)
	withSurcharge := e1.EstimateCookTime([]string{"rice", "chicken"}, "curry")
	without := e2.EstimateCookTime([]string{"chicken"}, "curry")

	// 同種子下擾動相同，差異只來自加價
	assert.NotEqual(t, withSurcharge, without)
}

func TestFormatCookTime(t *testing.T) {
	assert.Equal(t, "45 minutes", formatCookTime(45))
	assert.Equal(t, "59 minutes", formatCookTime(59))
	// 整點輸出帶尾端空白，格式不可更動
	assert.Equal(t, "1 hour ", formatCookTime(60))
	assert.Equal(t, "1 hour 15 minutes", formatCookTime(75))
	assert.Equal(t, "2 hours ", formatCookTime(120))
	assert.Equal(t, "2 hours 30 minutes", formatCookTime(150))
}

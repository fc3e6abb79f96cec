package engine

import (
	"fmt"
	"strings"
)

// EstimateCalories 依菜型與食材組成估算單份卡路里
// 先取菜型基準值再逐項修正，最後加上 ±10% 的隨機擾動，
// 結果不會低於 caloriesFloor
func (e *Engine) EstimateCalories(ingredients []string, recipeType string) int {
	cal, ok := baseCaloriesByType[recipeType]
	if !ok {
		cal = defaultCalories
	}
	cal += calorieAdjustments(ingredients)

	if jitter := cal / 10; jitter > 0 {
		cal += e.rng.Intn(2*jitter+1) - jitter
	}
	if cal < caloriesFloor {
		cal = caloriesFloor
	}
	return cal
}

// calorieAdjustments 依食材組成計算卡路里修正量，每項符合的食材各計一次
func calorieAdjustments(ingredients []string) int {
	adj := 0
	adj -= len(matchAny(ingredients, leanProteinTerms)) * 20
	adj += len(matchAny(ingredients, fattyProteinTerms)) * 40
	adj += len(matchAny(ingredients, dairyFatTerms)) * 50
	adj += len(matchAny(ingredients, sweetTerms)) * 40

	c := Classify(ingredients)
	if n := len(c.Vegetables); n > 2 {
		adj -= (n - 2) * 20
	}
	if n := len(c.Grains); n > 1 {
		adj += (n - 1) * 30
	}
	return adj
}

// EstimateCookTime 依菜型與食材估算烹飪時間並格式化
func (e *Engine) EstimateCookTime(ingredients []string, recipeType string) string {
	minutes, ok := baseMinutesByType[recipeType]
	if !ok {
		minutes = defaultCookMinutes
	}

	joined := strings.ToLower(strings.Join(ingredients, " "))
	if strings.Contains(joined, "beef") || strings.Contains(joined, "lamb") {
		minutes += 15
	}
	if strings.Contains(joined, "shrimp") || strings.Contains(joined, "fish") {
		minutes -= 5
	}
	if strings.Contains(joined, "rice") && !riceTypeLabels[recipeType] {
		minutes += 10
	}
	minutes += e.rng.Intn(10)

	return formatCookTime(minutes)
}

// formatCookTime 分鐘數轉成口語化字串
// 整點小時會帶一個尾端空白，保留既有輸出格式
func formatCookTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours := minutes / 60
	rem := minutes % 60
	unit := "hour"
	if hours > 1 {
		unit = "hours"
	}
	if rem == 0 {
		return fmt.Sprintf("%d %s ", hours, unit)
	}
	return fmt.Sprintf("%d %s %d minutes", hours, unit, rem)
}

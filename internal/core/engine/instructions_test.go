package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInstructionsCurryTemplate(t *testing.T) {
	steps := BuildInstructions([]string{"chicken", "spinach", "salt"}, "indian", "curry")

	assert.Len(t, steps, 9)
	joined := strings.Join(steps, " ")
	assert.Contains(t, joined, "chicken")
	assert.Contains(t, joined, "spinach")
	// 鹽屬基底食材，不在做法中點名為主料
	assert.NotContains(t, joined, "Add salt and")
}

func TestBuildInstructionsStirFryTemplate(t *testing.T) {
	steps := BuildInstructions([]string{"beef", "broccoli"}, "chinese", "stir-fry")

	assert.Len(t, steps, 8)
	assert.Contains(t, steps[1], "wok")
	assert.Contains(t, strings.Join(steps, " "), "beef")
}

func TestBuildInstructionsPastaTemplate(t *testing.T) {
	steps := BuildInstructions([]string{"spaghetti", "shrimp", "tomato"}, "italian", "pasta")

	assert.Len(t, steps, 8)
	assert.Contains(t, steps[0], "salted water")
}

func TestBuildInstructionsGenericFallback(t *testing.T) {
	steps := BuildInstructions([]string{"turkey", "kale"}, "american", "grill")

	assert.Len(t, steps, 8)
	assert.Contains(t, strings.Join(steps, " "), "turkey")
}

func TestBuildInstructionsFallbackText(t *testing.T) {
	// 沒有蛋白質時通用範本略過煎炒步驟，配料留用替代片語
	steps := BuildInstructions([]string{"salt", "pepper"}, "french", "appetizer")

	assert.Len(t, steps, 7)
	joined := strings.Join(steps, " ")
	assert.NotContains(t, joined, "the protein")
	assert.Contains(t, joined, "the vegetables")
}

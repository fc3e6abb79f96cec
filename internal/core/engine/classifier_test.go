package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBuckets(t *testing.T) {
	c := Classify([]string{"chicken breast", "Tomatoes", "basmati rice", "cumin"})

	assert.Equal(t, []string{"chicken breast"}, c.Proteins)
	assert.Equal(t, []string{"Tomatoes"}, c.Vegetables)
	assert.Equal(t, []string{"basmati rice"}, c.Grains)
	assert.Equal(t, []string{"cumin"}, c.Spices)
}

func TestClassifyMultiBucket(t *testing.T) {
	// "egg noodles" 同時命中蛋白質與穀物
	c := Classify([]string{"egg noodles"})

	assert.Equal(t, []string{"egg noodles"}, c.Proteins)
	assert.Equal(t, []string{"egg noodles"}, c.Grains)
}

func TestClassifyEggplantMatchesEgg(t *testing.T) {
	// 子字串比對讓 eggplant 也落入蛋白質，行為需維持不變
	c := Classify([]string{"eggplant"})

	assert.Equal(t, []string{"eggplant"}, c.Proteins)
	assert.Equal(t, []string{"eggplant"}, c.Vegetables)
}

func TestClassifyDeterministic(t *testing.T) {
	in := []string{"pork belly", "cabbage", "rice", "ginger"}
	first := Classify(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(in))
	}
}

func TestClassifyEmpty(t *testing.T) {
	c := Classify(nil)

	assert.False(t, c.HasProtein())
	assert.False(t, c.HasVegetable())
	assert.False(t, c.HasGrain())
	assert.Empty(t, c.Spices)
}

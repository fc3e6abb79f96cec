package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	require.NoError(t, ParseJSON(`{"name":"biryani"}`, &v))
	assert.Equal(t, "biryani", v.Name)

	assert.Error(t, ParseJSON(`{"name":"a"} trailing`, &v))
}

func TestParseJSONAllowsUnknownFields(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	assert.NoError(t, ParseJSON(`{"name":"a","extra":1}`, &v))
	assert.Equal(t, "a", v.Name)
}

func TestExtractJSONObject(t *testing.T) {
	fenced := "```json\n{\"a\":1}\n```"
	assert.Equal(t, `{"a":1}`, ExtractJSONObject(fenced))

	chatty := "Here you go: {\"a\":1} hope that helps"
	assert.Equal(t, `{"a":1}`, ExtractJSONObject(chatty))

	noJSON := ExtractJSONObject("no object here")
	assert.False(t, strings.Contains(noJSON, "{"))
}

func TestQuoteJSONKeys(t *testing.T) {
	assert.Equal(t, `{"title": "a", "calories": 1}`, QuoteJSONKeys(`{title: "a", calories: 1}`))
	// 已加引號的鍵不受影響
	assert.Equal(t, `{"title": "a"}`, QuoteJSONKeys(`{"title": "a"}`))
}

func TestNormalizeRequest(t *testing.T) {
	req := GenerateRequest{
		Ingredients: []string{" chicken ", "", "rice"},
		Cuisine:     " indian ",
		Dietary:     []string{" vegan ", ""},
	}
	req.Normalize()

	assert.Equal(t, []string{"chicken", "rice"}, req.Ingredients)
	assert.Equal(t, "indian", req.Cuisine)
	assert.Equal(t, []string{"vegan"}, req.Dietary)
}

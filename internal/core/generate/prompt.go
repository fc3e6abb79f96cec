package generate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"recipe-suggester/internal/pkg/common"
)

// BuildPrompt 組出給模型的指令
// 要求固定回傳三道食譜的 JSON 物件，欄位結構與內部模型一致
func BuildPrompt(req common.GenerateRequest) string {
	var b strings.Builder

	b.WriteString("Generate exactly 3 creative recipes using these ingredients: ")
	b.WriteString(strings.Join(req.Ingredients, ", "))
	b.WriteString(".")

	if req.Cuisine != "" {
		fmt.Fprintf(&b, " Cuisine preference: %s.", req.Cuisine)
	}
	if len(req.Dietary) > 0 {
		fmt.Fprintf(&b, " Dietary requirements: %s.", strings.Join(req.Dietary, ", "))
	}

	b.WriteString(` Respond with a JSON object containing a "recipes" array with exactly 3 recipes.`)
	b.WriteString(` Each recipe must have these fields:`)
	b.WriteString(` "title" (string), "description" (string), "ingredients" (array of strings, include quantities),`)
	b.WriteString(` "instructions" (array of strings, one step each), "cuisine" (string),`)
	b.WriteString(` "calories" (number, per serving), "cookTime" (string, e.g. "45 minutes"),`)
	b.WriteString(` "chefNote" (string, one practical tip),`)
	b.WriteString(` "dietaryFlags" (object with boolean keys vegetarian, vegan, glutenFree, lowCarb, dairyFree, keto).`)
	b.WriteString(` Return only the JSON object, no other text.`)

	return b.String()
}

// Fingerprint 將請求正規化後取雜湊，作為快取鍵
// 食材與偏好排序後比對，順序不同的相同請求共用同一鍵
func Fingerprint(req common.GenerateRequest) string {
	ingredients := make([]string, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		ingredients[i] = strings.ToLower(strings.TrimSpace(ing))
	}
	sort.Strings(ingredients)

	dietary := make([]string, len(req.Dietary))
	for i, d := range req.Dietary {
		dietary[i] = strings.ToLower(strings.TrimSpace(d))
	}
	sort.Strings(dietary)

	payload := fmt.Sprintf("%s|%s|%s",
		strings.Join(ingredients, ","),
		strings.ToLower(strings.TrimSpace(req.Cuisine)),
		strings.Join(dietary, ","),
	)
	hash := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(hash[:])
}

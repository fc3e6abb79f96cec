package generate

import (
	"encoding/json"
	"fmt"
	"strings"

	"recipe-suggester/internal/core/engine"
	"recipe-suggester/internal/pkg/common"
)

// recipePayload 模型回應中的單筆食譜
// 數值欄位用 json.Number 承接，模型偶爾會回字串數字
type recipePayload struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Ingredients  []string            `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	Cuisine      string              `json:"cuisine"`
	Calories     json.Number         `json:"calories"`
	CookTime     string              `json:"cookTime"`
	ImageURL     string              `json:"imageUrl"`
	ChefNote     string              `json:"chefNote"`
	DietaryFlags common.DietaryFlags `json:"dietaryFlags"`
}

type recipesEnvelope struct {
	Recipes []recipePayload `json:"recipes"`
}

const (
	fallbackCalories = 400
	fallbackCookTime = "30 minutes"
	fallbackChefNote = "Taste as you go and adjust the seasoning to your liking."
)

func decodeEnvelope(data string, envelope *recipesEnvelope) error {
	decoder := json.NewDecoder(strings.NewReader(data))
	decoder.UseNumber()
	return decoder.Decode(envelope)
}

// ParseRecipes 解析模型回應並正規化為內部食譜
// 回應需含恰好三筆食譜，缺欄位時補預設值
func ParseRecipes(raw string, req common.GenerateRequest) ([]common.Recipe, error) {
	cleaned := common.ExtractJSONObject(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var envelope recipesEnvelope
	if err := decodeEnvelope(cleaned, &envelope); err != nil {
		// 部分模型會輸出未加引號的鍵，修補後再試一次
		if retryErr := decodeEnvelope(common.QuoteJSONKeys(cleaned), &envelope); retryErr != nil {
			return nil, fmt.Errorf("failed to decode recipes: %w", err)
		}
	}

	if len(envelope.Recipes) != 3 {
		return nil, fmt.Errorf("expected 3 recipes, got %d", len(envelope.Recipes))
	}

	userFlags := engine.ParseDietary(req.Dietary)
	cuisine := strings.ToLower(strings.TrimSpace(req.Cuisine))

	recipes := make([]common.Recipe, 0, len(envelope.Recipes))
	for i, p := range envelope.Recipes {
		if p.Title == "" || len(p.Ingredients) == 0 || len(p.Instructions) == 0 {
			return nil, fmt.Errorf("recipe %d missing required fields", i)
		}

		calories := fallbackCalories
		if n, err := p.Calories.Int64(); err == nil && n > 0 {
			calories = int(n)
		} else if f, err := p.Calories.Float64(); err == nil && f > 0 {
			calories = int(f)
		}

		cookTime := strings.TrimSpace(p.CookTime)
		if cookTime == "" {
			cookTime = fallbackCookTime
		}

		chefNote := strings.TrimSpace(p.ChefNote)
		if chefNote == "" {
			chefNote = fallbackChefNote
		}

		recipeCuisine := strings.ToLower(strings.TrimSpace(p.Cuisine))
		if recipeCuisine == "" {
			recipeCuisine = cuisine
		}

		imageURL := p.ImageURL
		if imageURL == "" {
			imageURL = engine.ImageFor(recipeCuisine, i)
		}

		recipes = append(recipes, common.Recipe{
			Title:        p.Title,
			Description:  p.Description,
			Ingredients:  p.Ingredients,
			Instructions: p.Instructions,
			Cuisine:      recipeCuisine,
			Calories:     calories,
			CookTime:     cookTime,
			ImageURL:     imageURL,
			ChefNote:     chefNote,
			DietaryFlags: p.DietaryFlags.Merge(userFlags),
		})
	}
	return recipes, nil
}

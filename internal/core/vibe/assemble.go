package vibe

import (
	"fmt"
	"net/url"

	"vibe-recipe-app/internal/core/recipe"
)

// placeholderImageURL 候選食譜缺少圖片時，以標題產生佔位圖
const placeholderImageURL = "https://via.placeholder.com/1024x1024.png?text=%s"

// assembleResult 將選出的候選與敘事組合為最終結果
// 缺漏的選填欄位一律以預設值補齊，不會失敗
func assembleResult(best recipe.Candidate, narrative Narrative) *GenerationResult {
	ingredients := make([]string, 0, len(best.ExtendedIngredients))
	for _, ing := range best.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}

	// 只取第一組烹飪步驟
	steps := []string{}
	if len(best.AnalyzedInstructions) > 0 {
		group := best.AnalyzedInstructions[0]
		steps = make([]string, 0, len(group.Steps))
		for _, step := range group.Steps {
			steps = append(steps, step.Step)
		}
	}

	imageURL := best.Image
	if imageURL == "" {
		imageURL = fmt.Sprintf(placeholderImageURL, url.QueryEscape(best.Title))
	}

	return &GenerationResult{
		RecipeTitle: best.Title,
		Ingredients: ingredients,
		Steps:       steps,
		Backstory:   narrative.Backstory,
		StyleClass:  narrative.StyleClass,
		ImageURL:    imageURL,
	}
}

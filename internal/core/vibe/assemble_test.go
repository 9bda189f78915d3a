package vibe

import (
	"testing"

	"vibe-recipe-app/internal/core/recipe"

	"github.com/stretchr/testify/assert"
)

func TestAssembleResultFullCandidate(t *testing.T) {
	best := recipe.Candidate{
		Title: "Beef Stew",
		Image: "http://x/img.png",
		ExtendedIngredients: []recipe.ExtendedIngredient{
			{Original: "2 lb beef"},
			{Original: "3 carrots"},
		},
		AnalyzedInstructions: []recipe.InstructionGroup{
			{Steps: []recipe.InstructionStep{
				{Number: 1, Step: "Brown the beef."},
				{Number: 2, Step: "Add the carrots."},
			}},
			{Steps: []recipe.InstructionStep{
				{Number: 1, Step: "A second group that must be ignored."},
			}},
		},
	}
	narrative := Narrative{Backstory: "A tale of old.", StyleClass: "bg-amber-50"}

	result := assembleResult(best, narrative)

	assert.Equal(t, "Beef Stew", result.RecipeTitle)
	assert.Equal(t, []string{"2 lb beef", "3 carrots"}, result.Ingredients)
	// 只取第一組步驟
	assert.Equal(t, []string{"Brown the beef.", "Add the carrots."}, result.Steps)
	assert.Equal(t, "A tale of old.", result.Backstory)
	assert.Equal(t, "bg-amber-50", result.StyleClass)
	assert.Equal(t, "http://x/img.png", result.ImageURL)
}

func TestAssembleResultMissingOptionalFields(t *testing.T) {
	best := recipe.Candidate{Title: "Stew", Image: ""}

	result := assembleResult(best, Narrative{StyleClass: defaultStyleClass})

	assert.NotNil(t, result.Ingredients)
	assert.Empty(t, result.Ingredients)
	assert.NotNil(t, result.Steps)
	assert.Empty(t, result.Steps)
	assert.Contains(t, result.ImageURL, "via.placeholder.com")
	assert.Contains(t, result.ImageURL, "Stew")
}

func TestAssembleResultPlaceholderEncodesTitle(t *testing.T) {
	best := recipe.Candidate{Title: "Beef & Barley Stew"}

	result := assembleResult(best, Narrative{})

	assert.Equal(t, "https://via.placeholder.com/1024x1024.png?text=Beef+%26+Barley+Stew", result.ImageURL)
}

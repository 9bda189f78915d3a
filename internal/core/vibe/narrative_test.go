package vibe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNarrativeWellFormed(t *testing.T) {
	n := splitNarrative("A tale of old.\n\nstyleClass: bg-amber-50")
	assert.Equal(t, "A tale of old.", n.Backstory)
	assert.Equal(t, "bg-amber-50", n.StyleClass)
}

func TestSplitNarrativeMarkerCaseInsensitive(t *testing.T) {
	n := splitNarrative("Forged in dragonfire.\n\nSTYLECLASS: bg-red-900 text-amber-100")
	assert.Equal(t, "Forged in dragonfire.", n.Backstory)
	assert.Equal(t, "bg-red-900 text-amber-100", n.StyleClass)
}

func TestSplitNarrativeMarkerAbsent(t *testing.T) {
	text := "A dish served in the halls of the mountain king."
	n := splitNarrative(text)
	assert.Equal(t, text, n.Backstory)
	assert.Equal(t, defaultStyleClass, n.StyleClass)
}

func TestSplitNarrativeOnlyFirstMarkerUsed(t *testing.T) {
	n := splitNarrative("Part one.\n\nstyleClass: bg-a\n\nstyleClass: bg-b")
	assert.Equal(t, "Part one.", n.Backstory)
	assert.Equal(t, "bg-a\n\nstyleClass: bg-b", n.StyleClass)
}

func TestSplitNarrativeEmptyText(t *testing.T) {
	n := splitNarrative("")
	assert.Equal(t, "", n.Backstory)
	assert.Equal(t, defaultStyleClass, n.StyleClass)
}

func TestSplitNarrativeTrimsBothParts(t *testing.T) {
	n := splitNarrative("  A quiet village recipe.  \n\nstyleClass:   bg-stone-100  ")
	assert.Equal(t, "A quiet village recipe.", n.Backstory)
	assert.Equal(t, "bg-stone-100", n.StyleClass)
}

func TestBuildPromptsEmbedTitles(t *testing.T) {
	vibePrompt := buildVibePrompt("Lord of the Rings")
	assert.Contains(t, vibePrompt, `"Lord of the Rings"`)

	storyPrompt := buildStoryPrompt("Lord of the Rings", "Beef Stew")
	assert.Contains(t, storyPrompt, `"Lord of the Rings"`)
	assert.Contains(t, storyPrompt, "Recipe title: Beef Stew")
	assert.Contains(t, storyPrompt, "styleClass")
}

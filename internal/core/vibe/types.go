package vibe

// GenerationResult 最終回傳給客戶端的組合結果
type GenerationResult struct {
	RecipeTitle string   `json:"recipeTitle"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Backstory   string   `json:"backstory"`
	StyleClass  string   `json:"styleClass"`
	ImageURL    string   `json:"imageUrl"`
}

// Narrative 虛構背景故事與樣式標籤
type Narrative struct {
	Backstory  string `json:"backstory"`
	StyleClass string `json:"style_class"`
}

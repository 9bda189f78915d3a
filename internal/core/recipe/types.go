package recipe

// Candidate Spoonacular 搜尋結果中的單筆食譜
// 欄位逐一防禦性解析，缺漏欄位以零值處理
type Candidate struct {
	ID                   int                  `json:"id,omitempty"`
	Title                string               `json:"title"`
	SpoonacularScore     *float64             `json:"spoonacularScore"`
	Image                string               `json:"image"`
	ExtendedIngredients  []ExtendedIngredient `json:"extendedIngredients"`
	AnalyzedInstructions []InstructionGroup   `json:"analyzedInstructions"`
}

// ExtendedIngredient 食材資訊，original 為顯示用原始文字
type ExtendedIngredient struct {
	Original string `json:"original"`
}

// InstructionGroup 一組烹飪步驟
type InstructionGroup struct {
	Name  string            `json:"name"`
	Steps []InstructionStep `json:"steps"`
}

// InstructionStep 單一烹飪步驟
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// searchResponse complexSearch 的回應結構
type searchResponse struct {
	Results      []Candidate `json:"results"`
	TotalResults int         `json:"totalResults"`
}

// Score 回傳比較用分數；缺漏或負值一律視為 0
func (c Candidate) Score() float64 {
	if c.SpoonacularScore == nil || *c.SpoonacularScore < 0 {
		return 0
	}
	return *c.SpoonacularScore
}

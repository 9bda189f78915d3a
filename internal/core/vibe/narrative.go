package vibe

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// defaultStyleClass 模型未建議樣式時的固定預設值
const defaultStyleClass = "bg-amber-50 border-red-200 font-serif text-stone-800"

// styleClassMarker 背景故事與樣式標籤之間的固定分隔標記（不分大小寫）
var styleClassMarker = regexp.MustCompile(`(?i)\n\nstyleClass:`)

// buildStoryPrompt 建立背景故事的固定模板提示
func buildStoryPrompt(title, recipeTitle string) string {
	return fmt.Sprintf(`Create a fictional backstory for the following real-world recipe as if it came from a world inspired by "%s". Include a short paragraph backstory and suggest a Tailwind CSS class string to match the vibe (styleClass).

Recipe title: %s`, title, recipeTitle)
}

// splitNarrative 以第一個分隔標記將模型文字拆為背景故事與樣式標籤
// 標記不存在時整段文字視為背景故事，樣式標籤使用預設值
func splitNarrative(text string) Narrative {
	text = strings.TrimSpace(text)

	loc := styleClassMarker.FindStringIndex(text)
	if loc == nil {
		return Narrative{
			Backstory:  text,
			StyleClass: defaultStyleClass,
		}
	}

	return Narrative{
		Backstory:  strings.TrimSpace(text[:loc[0]]),
		StyleClass: strings.TrimSpace(text[loc[1]:]),
	}
}

// composeNarrative 以第二次模型呼叫生成背景故事與樣式標籤
func (s *Service) composeNarrative(ctx context.Context, title, recipeTitle string) (Narrative, error) {
	content, err := s.aiService.ProcessRequest(ctx, buildStoryPrompt(title, recipeTitle))
	if err != nil {
		return Narrative{}, fmt.Errorf("failed to compose backstory: %w", err)
	}

	return splitNarrative(content), nil
}

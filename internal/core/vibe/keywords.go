package vibe

import (
	"context"
	"fmt"

	"vibe-recipe-app/internal/pkg/common"

	"go.uber.org/zap"
)

// fallbackKeywords 模型未回傳可用文字時的預設搜尋關鍵字
const fallbackKeywords = "fantasy rustic medieval"

// buildVibePrompt 建立氛圍關鍵字的固定模板提示
func buildVibePrompt(title string) string {
	return fmt.Sprintf(`Given the media title "%s", describe its mood, setting, and a matching food vibe. Return a short phrase or keywords that could be used to describe a real-world cuisine or meal theme.`, title)
}

// deriveKeywords 以一次模型呼叫將作品標題轉為料理氛圍關鍵字
func (s *Service) deriveKeywords(ctx context.Context, title string) (string, error) {
	content, err := s.aiService.ProcessRequest(ctx, buildVibePrompt(title))
	if err != nil {
		return "", fmt.Errorf("failed to derive vibe keywords: %w", err)
	}

	if content == "" {
		common.LogWarn("Empty vibe keywords from model, using fallback",
			zap.String("title", title),
		)
		return fallbackKeywords, nil
	}

	return content, nil
}

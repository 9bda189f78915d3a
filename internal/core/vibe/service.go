package vibe

import (
	"context"
	"fmt"
	"strings"

	"vibe-recipe-app/internal/core/recipe"
	"vibe-recipe-app/internal/pkg/common"

	"go.uber.org/zap"
)

// CompletionService 語言模型補全能力
type CompletionService interface {
	ProcessRequest(ctx context.Context, prompt string) (string, error)
}

// RecipeSearcher 食譜搜尋能力
type RecipeSearcher interface {
	Search(ctx context.Context, query string) ([]recipe.Candidate, error)
}

// Service 氛圍食譜生成服務
// --------------------------------------------------
// 流程為嚴格線性：標題 → 關鍵字 → 候選 → 最佳候選 → 敘事 → 組合結果，
// 每個請求獨立執行，服務本身不持有任何請求間狀態
type Service struct {
	aiService    CompletionService
	recipeClient RecipeSearcher
}

// NewService 創建氛圍食譜生成服務
func NewService(aiService CompletionService, recipeClient RecipeSearcher) *Service {
	return &Service{
		aiService:    aiService,
		recipeClient: recipeClient,
	}
}

// Generate 依作品標題生成一份氛圍匹配的食譜
// 標題只驗證存在與否，其餘內容原樣交給模型
func (s *Service) Generate(ctx context.Context, title string) (*GenerationResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.NewValidationError("Media title is required")
	}

	keywords, err := s.deriveKeywords(ctx, title)
	if err != nil {
		return nil, err
	}

	common.LogDebug("氛圍關鍵字已生成",
		zap.String("title", title),
		zap.String("keywords", keywords),
	)

	candidates, err := s.recipeClient.Search(ctx, keywords)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}

	best := recipe.SelectBest(candidates)

	common.LogDebug("最佳候選已選出",
		zap.String("recipe_title", best.Title),
		zap.Float64("score", best.Score()),
		zap.Int("candidates", len(candidates)),
	)

	narrative, err := s.composeNarrative(ctx, title, best.Title)
	if err != nil {
		return nil, err
	}

	return assembleResult(best, narrative), nil
}

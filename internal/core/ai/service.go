package ai

import (
	"context"
	"strings"
	"time"

	"vibe-recipe-app/internal/infrastructure/config"
	"vibe-recipe-app/internal/pkg/common"
)

// Service AI 服務
// 每次呼叫共用同一個客戶端，但不共享任何請求間狀態
type Service struct {
	config *config.Config
	client *Client
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: NewClient(cfg),
	}
}

// ProcessRequest 統一對外方法：限制單次呼叫時間並回傳去除前後空白的文字
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (string, error) {
	// 單次呼叫設定逾時上限，避免慢速外部服務拖垮整個請求
	ctx, cancel := context.WithTimeout(ctx, s.config.OpenAI.Timeout)
	defer cancel()

	start := time.Now()
	content, err := s.client.Complete(ctx, prompt)
	common.LogAICall(prompt, time.Since(start), err, "")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(content), nil
}

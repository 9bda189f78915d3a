package ai

import (
	"context"
	"fmt"
	"net/http"

	"vibe-recipe-app/internal/infrastructure/config"
	"vibe-recipe-app/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Message 聊天消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest Chat Completions 請求結構
type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// chatResponse Chat Completions 響應結構
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client OpenAI Chat Completions 客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient 創建 OpenAI 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.OpenAI.BaseURL).
		SetTimeout(cfg.OpenAI.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenAI.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

// Complete 以單一 user 消息呼叫模型，回傳第一個 choice 的文字
// choices 為空時回傳空字串，由呼叫端決定預設值
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Model: c.config.OpenAI.Model,
		Messages: []Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: c.config.OpenAI.MaxTokens,
	}

	// 發送請求
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenAI: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("OpenAI API returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.OpenAI.Model),
			zap.String("response", resp.String()),
		)
		return "", fmt.Errorf("%w (status %d)", common.ErrAIServiceError, resp.StatusCode())
	}

	// 解析回應
	var result chatResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	if len(result.Choices) == 0 {
		common.LogWarn("Empty choices in OpenAI response",
			zap.String("model", c.config.OpenAI.Model),
		)
		return "", nil
	}

	return result.Choices[0].Message.Content, nil
}

package recipe

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"vibe-recipe-app/internal/infrastructure/config"
	"vibe-recipe-app/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client Spoonacular 食譜搜尋客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient 創建 Spoonacular 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Spoonacular.BaseURL).
		SetTimeout(cfg.Spoonacular.Timeout)

	return &Client{
		config: cfg,
		client: client,
	}
}

// Search 以關鍵字搜尋食譜，回傳最多 max_results 筆完整候選
// 搜尋結果為空時回傳 common.ErrNoRecipesFound
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":                query,
			"number":               strconv.Itoa(c.config.Spoonacular.MaxResults),
			"addRecipeInformation": "true",
			"apiKey":               c.config.Spoonacular.APIKey,
		}).
		Get("/recipes/complexSearch")

	if err != nil {
		return nil, fmt.Errorf("failed to send request to Spoonacular: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("Spoonacular API returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("Spoonacular API error (status %d)", resp.StatusCode())
	}

	// 解析回應
	var result searchResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse Spoonacular response: %w", err)
	}

	if len(result.Results) == 0 {
		common.LogWarn("Spoonacular search returned no results",
			zap.String("query", query),
		)
		return nil, common.ErrNoRecipesFound
	}

	common.LogInfo("Spoonacular search completed",
		zap.String("query", query),
		zap.Int("results", len(result.Results)),
	)

	return result.Results, nil
}

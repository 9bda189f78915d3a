package vibe

import (
	"net/http"

	vibeService "vibe-recipe-app/internal/core/vibe"
	"vibe-recipe-app/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// serverErrorMessage 所有管線失敗統一回傳的訊息，不得洩漏上游錯誤細節
const serverErrorMessage = "Something went wrong on the server."

// GenerateRequest 氛圍食譜生成請求
type GenerateRequest struct {
	Title string `json:"title"` // 書籍、影集或電影標題
}

// Handler 氛圍食譜處理程序
type Handler struct {
	vibeService *vibeService.Service
}

// NewHandler 創建新的氛圍食譜處理程序
func NewHandler(svc *vibeService.Service) *Handler {
	return &Handler{
		vibeService: svc,
	}
}

// HandleGenerate 依作品標題生成氛圍匹配食譜
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理氛圍食譜生成請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.vibeService.Generate(c.Request.Context(), req.Title)
	if err != nil {
		// 輸入驗證錯誤回 400，其餘管線錯誤一律回固定的 500 訊息
		if common.IsValidationError(err) {
			common.LogWarn("缺少作品標題",
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		common.LogError("氛圍食譜生成失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("title", req.Title),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": serverErrorMessage})
		return
	}

	common.LogInfo("氛圍食譜生成成功",
		zap.String("request_id", requestID),
		zap.String("title", req.Title),
		zap.String("recipe_title", result.RecipeTitle),
	)

	c.JSON(http.StatusOK, result)
}

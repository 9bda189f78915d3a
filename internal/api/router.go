package api

import (
	"context"
	"time"

	"vibe-recipe-app/internal/api/handlers/health"
	vibeHandler "vibe-recipe-app/internal/api/handlers/vibe"
	"vibe-recipe-app/internal/api/middleware"
	"vibe-recipe-app/internal/core/ai"
	"vibe-recipe-app/internal/core/recipe"
	vibeService "vibe-recipe-app/internal/core/vibe"
	"vibe-recipe-app/internal/infrastructure/config"
	"vibe-recipe-app/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (1MB)：純文字 API，不接受圖片
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	common.LogInfo("Initializing services",
		zap.String("model", cfg.OpenAI.Model),
		zap.Int("max_results", cfg.Spoonacular.MaxResults),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化服務：外部客戶端在啟動時建立一次，明確傳入各服務
	aiSvc := ai.NewService(cfg)
	recipeClient := recipe.NewClient(cfg)
	vibeSvc := vibeService.NewService(aiSvc, recipeClient)

	// 全局中間件：設置超時和配置
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		// 創建新的請求上下文
		req := c.Request.WithContext(ctx)
		c.Request = req

		// 設置配置
		c.Set("config", cfg)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(common.ErrGatewayTimeout.Status, gin.H{
				"error": common.ErrGatewayTimeout.Message,
				"code":  common.ErrGatewayTimeout.Code,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 未匹配路由與方法的統一回應
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(common.ErrNotFound.Status, gin.H{
			"error": common.ErrNotFound.Message,
			"code":  common.ErrNotFound.Code,
		})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(common.ErrMethodNotAllowed.Status, gin.H{
			"error": common.ErrMethodNotAllowed.Message,
			"code":  common.ErrMethodNotAllowed.Code,
		})
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		vibeHandlerInstance := vibeHandler.NewHandler(vibeSvc)

		// 註冊氛圍食譜路由
		vibeGroup := api.Group("/vibe")
		{
			// 依作品標題生成氛圍匹配食譜
			vibeGroup.POST("/generate", vibeHandlerInstance.HandleGenerate)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

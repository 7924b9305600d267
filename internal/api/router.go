package api

import (
	"context"
	"net/http"
	"time"

	"recipe-scanner/internal/api/handlers/health"
	recipeHandler "recipe-scanner/internal/api/handlers/recipe"
	scanHandler "recipe-scanner/internal/api/handlers/scan"
	"recipe-scanner/internal/api/middleware"
	"recipe-scanner/internal/core/catalog"
	"recipe-scanner/internal/core/ocr/cache"
	"recipe-scanner/internal/core/ocr/engine"
	"recipe-scanner/internal/infrastructure/config"
	"recipe-scanner/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 60 * time.Second
	// 掃描請求體大小限制 (10MB，含 base64 圖片)
	maxBodySize = 10 << 20
	// 純 JSON 端點的請求體大小限制 (1MB)
	jsonMaxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, store *catalog.Store, cacheStore cache.Store) (*gin.Engine, error) {
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
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制：掃描路由放寬到圖片上限，其餘維持 JSON 上限
	router.Use(middleware.BodySizeLimit(jsonMaxBodySize, maxBodySize))

	// 速率限制與請求去重
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("engine_enabled", cfg.Engine.Enabled),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化辨識引擎客戶端
	engineClient := engine.NewClient(cfg)

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// 設置配置與快取
		c.Set("config", cfg)
		c.Set("cache", cacheStore)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		recipes := recipeHandler.NewHandler(store)
		scanner := scanHandler.NewHandler(engineClient, cacheStore)

		// 食譜卡掃描
		if cfg.Engine.Enabled {
			api.POST("/scan", scanner.HandleScan)
		}

		// 食譜管理與搜尋
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("", recipes.HandleList)
			recipeGroup.POST("", recipes.HandleCreate)
			recipeGroup.PUT("/:id", recipes.HandleUpdate)
			recipeGroup.DELETE("/:id", recipes.HandleDelete)
			recipeGroup.POST("/search", recipes.HandleSearch)
		}

		// 輸入驗證
		validateGroup := api.Group("/validate")
		{
			validateGroup.POST("/tags", recipes.HandleValidateTags)
			validateGroup.POST("/ingredients", recipes.HandleValidateIngredients)
		}

		// 採購清單
		shoppingGroup := api.Group("/shopping-list")
		{
			shoppingGroup.POST("", recipes.HandleShoppingList)
			shoppingGroup.POST("/toggle", recipes.HandleTogglePurchased)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("engine_enabled", cfg.Engine.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

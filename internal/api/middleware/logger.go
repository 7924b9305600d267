package middleware

import (
	"strings"
	"time"

	"recipe-scanner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// routeClass 將路徑歸類為服務的幾個端點族群，供日誌與限流統計使用
func routeClass(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/v1/scan"):
		return "scan"
	case strings.HasPrefix(path, "/api/v1/recipes"):
		return "recipes"
	case strings.HasPrefix(path, "/api/v1/validate"):
		return "validate"
	case strings.HasPrefix(path, "/api/v1/shopping-list"):
		return "shopping-list"
	case path == "/health" || path == "/ready" || path == "/live":
		return "health"
	default:
		return "other"
	}
}

// Logger 日誌中間件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 開始時間
		start := time.Now()
		path := c.Request.URL.Path
		requestID := c.GetHeader("X-Request-ID")

		// 處理請求
		c.Next()

		// 結束時間
		latency := time.Since(start)

		// 獲取狀態碼
		status := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method

		// 構建基本日誌字段
		// 掃描請求的本體是 base64 圖片，這裡只記大小不記內容。
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", method),
			zap.String("path", path),
			zap.String("route_class", routeClass(path)),
			zap.String("ip", clientIP),
			zap.Int64("body_size", c.Request.ContentLength),
			zap.Duration("latency", latency),
			zap.String("request_id", requestID),
		}

		// 添加錯誤信息（如果有）
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		// 根據狀態碼記錄不同級別的日誌
		switch {
		case status >= 500:
			common.LogError("伺服器錯誤",
				append(fields, zap.String("error_type", "server_error"))...,
			)
		case status >= 400:
			common.LogWarn("用戶端錯誤",
				append(fields, zap.String("error_type", "client_error"))...,
			)
		case status >= 300:
			common.LogInfo("重新導向",
				append(fields, zap.String("error_type", "redirect"))...,
			)
		default:
			common.LogInfo("請求完成",
				fields...,
			)
		}
	}
}

// Recovery 恢復中間件
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// 記錄基本錯誤信息
				common.LogError("Panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("route_class", routeClass(c.Request.URL.Path)),
					zap.String("method", c.Request.Method),
				)

				c.AbortWithStatusJSON(common.ErrInternalError.Status, gin.H{
					"error": common.ErrInternalError.Message,
					"code":  common.ErrInternalError.Code,
				})
			}
		}()

		c.Next()
	}
}

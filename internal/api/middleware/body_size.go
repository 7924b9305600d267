package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-scanner/internal/pkg/common"
)

// BodySizeLimit 依端點類型限制請求體大小的中間件
//
// 掃描端點的本體帶 base64 圖片，套用 imageMax；其餘端點都是
// 純 JSON，套用小得多的 jsonMax，避免非掃描路由被塞進圖片資料。
func BodySizeLimit(jsonMax, imageMax int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSize := jsonMax
		if routeClass(c.Request.URL.Path) == "scan" {
			maxSize = imageMax
		}

		// 檢查 Content-Length
		if c.Request.ContentLength > maxSize {
			common.LogWarn("Request body too large",
				zap.Int64("content_length", c.Request.ContentLength),
				zap.Int64("max_size", maxSize),
				zap.String("route_class", routeClass(c.Request.URL.Path)),
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":    "Request body too large",
				"max_size": maxSize,
			})
			return
		}

		// 設置請求體大小限制
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)

		c.Next()
	}
}

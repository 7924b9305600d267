package middleware

import (
	"fmt"
	"sync"
	"time"

	"recipe-scanner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 掃描請求會觸發一次辨識引擎呼叫，比目錄讀寫貴得多，
// 在同一個令牌桶裡以較高的成本計費。
const scanRequestCost = 5

// RateLimiter 限流器結構
type RateLimiter struct {
	mu       sync.Mutex
	tokens   int
	capacity int
	rate     float64
	lastTime time.Time
}

// NewRateLimiter 創建新的限流器
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:   requests,
		capacity: requests,
		rate:     float64(requests) / window.Seconds(),
		lastTime: time.Now(),
	}
}

// AllowN 檢查是否允許一個花費 cost 個令牌的請求
func (rl *RateLimiter) AllowN(cost int) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastTime).Seconds()
	rl.lastTime = now

	// 添加新令牌
	newTokens := int(elapsed * rl.rate)
	if newTokens > 0 {
		rl.tokens = min(rl.capacity, rl.tokens+newTokens)
	}

	// 檢查是否有足夠令牌
	if rl.tokens >= cost {
		rl.tokens -= cost
		return true
	}

	return false
}

// Allow 檢查是否允許一個單位成本的請求
func (rl *RateLimiter) Allow() bool {
	return rl.AllowN(1)
}

// requestCost 依端點類型決定請求成本
func requestCost(path string) int {
	if routeClass(path) == "scan" {
		return scanRequestCost
	}
	return 1
}

// RateLimit 限流中間件
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(requests, window)

	return func(c *gin.Context) {
		if !limiter.AllowN(requestCost(c.Request.URL.Path)) {
			common.LogWarn("Rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
				zap.String("route_class", routeClass(c.Request.URL.Path)),
			)

			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.JSON(common.ErrTooManyRequests.Status, gin.H{
				"error":       common.ErrTooManyRequests.Message,
				"code":        common.ErrTooManyRequests.Code,
				"retry_after": window.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// min 返回兩個整數中的較小值
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-scanner/internal/infrastructure/config"
	"recipe-scanner/internal/pkg/common"
)

// 掃描請求的本體是 MB 級的 base64 圖片；指紋只取本體前綴雜湊，
// 加上總長度即足以區分不同圖片，不必為了去重讀完整張圖。
const fingerprintPrefixBytes = 64 * 1024

var (
	// 請求緩存，用於去重
	requestCache = struct {
		sync.RWMutex
		requests map[string]time.Time
	}{
		requests: make(map[string]time.Time),
	}

	// 啟動自動清理 goroutine（只啟動一次）
	cleanupOnce sync.Once
)

// 啟動自動清理 goroutine
func startDeduplicationCleanup(cfg *config.Config) {
	cleanupOnce.Do(func() {
		interval := 10 * time.Minute
		window := 1 * time.Second
		if cfg != nil && cfg.DedupWindow > 0 {
			window = cfg.DedupWindow
		}
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				requestCache.Lock()
				for k, t := range requestCache.requests {
					if now.Sub(t) > 10*window {
						delete(requestCache.requests, k)
					}
				}
				requestCache.Unlock()
			}
		}()
	})
}

// Deduplication 請求去重中間件，支援從 config 取得 dedupWindow
// 短時間內重送同一張食譜卡（或同一筆變更）會被擋下，
// 避免重複觸發辨識引擎呼叫與重複寫入。
func Deduplication(cfg *config.Config) gin.HandlerFunc {
	startDeduplicationCleanup(cfg)
	return func(c *gin.Context) {
		dedupWindow := 1 * time.Second
		if cfg != nil && cfg.DedupWindow > 0 {
			dedupWindow = cfg.DedupWindow
		}

		// 只處理 POST 請求
		if c.Request.Method != "POST" {
			c.Next()
			return
		}

		fingerprint, ok := requestFingerprint(c)
		if !ok {
			c.Next()
			return
		}

		// 檢查是否是重複請求
		now := time.Now()
		requestCache.RLock()
		if lastTime, exists := requestCache.requests[fingerprint]; exists {
			if now.Sub(lastTime) <= dedupWindow {
				requestCache.RUnlock()
				common.LogWarn("重複請求已攔截",
					zap.String("path", c.Request.URL.Path),
					zap.String("route_class", routeClass(c.Request.URL.Path)),
				)
				c.JSON(common.ErrTooManyRequests.Status, gin.H{
					"error": common.ErrTooManyRequests.Message,
					"code":  common.ErrTooManyRequests.Code,
				})
				c.Abort()
				return
			}
		}
		requestCache.RUnlock()

		// 記錄請求
		requestCache.Lock()
		requestCache.requests[fingerprint] = now
		requestCache.Unlock()

		c.Next()
	}
}

// requestFingerprint 計算請求指紋：方法、路徑、本體長度與本體前綴雜湊
// 本體只預讀前綴，其餘部分原封不動留給後續 handler。
func requestFingerprint(c *gin.Context) (string, bool) {
	fingerprint := c.Request.Method + ":" + c.Request.URL.Path

	if c.Request.Body == nil {
		return fingerprint, true
	}

	head, err := io.ReadAll(io.LimitReader(c.Request.Body, fingerprintPrefixBytes))
	if err != nil {
		common.LogError("Failed to read request body", zap.Error(err))
		return "", false
	}

	// 恢復請求體：已讀的前綴接回剩餘未讀部分
	c.Request.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), c.Request.Body), c.Request.Body}

	if len(head) > 0 {
		hash := sha256.Sum256(head)
		fingerprint += fmt.Sprintf(":%d:%s", c.Request.ContentLength, hex.EncodeToString(hash[:]))
	}
	return fingerprint, true
}

package engine

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-scanner/internal/core/ocr"
	"recipe-scanner/internal/infrastructure/config"
	"recipe-scanner/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client 文字辨識引擎的 HTTP 客戶端
//
// 引擎是外部服務：收到 base64 圖片後回傳攤平全文與依閱讀順序
// 排列的區塊。核心的結構化流程（ocr 套件）永遠不直接呼叫引擎，
// 由 handler 先取得辨識結果再交給核心。
type Client struct {
	config *config.Config
	client *resty.Client
}

// recognizeRequest 引擎的辨識請求
type recognizeRequest struct {
	Image string `json:"image"`
}

// NewClient 創建辨識引擎客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Engine.BaseURL).
		SetTimeout(cfg.Engine.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.Engine.APIKey != "" {
		client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Engine.APIKey))
	}

	return &Client{
		config: cfg,
		client: client,
	}
}

// Recognize 將圖片送交引擎辨識
func (c *Client) Recognize(ctx context.Context, imageData string) (*ocr.Result, error) {
	if err := c.validateImage(imageData); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(recognizeRequest{Image: imageData}).
		Post("/v1/recognize")
	common.LogEngineCall(time.Since(start), err, "")

	if err != nil {
		return nil, fmt.Errorf("failed to send request to OCR engine: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogError("辨識引擎回傳錯誤",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", sanitizeBody(resp.String())),
		)
		return nil, fmt.Errorf("%w: status %d", common.ErrEngineUnavailable, resp.StatusCode())
	}

	var result ocr.Result
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse OCR engine response: %w", err)
	}

	common.LogInfo("辨識完成",
		zap.Int("blocks", len(result.Blocks)),
		zap.Int("text_length", len(result.Text)),
	)
	return &result, nil
}

// validateImage 檢查圖片資料是否可送交引擎
func (c *Client) validateImage(imageData string) error {
	if imageData == "" {
		return common.ErrInvalidImageFormat
	}

	payload := imageData
	if idx := strings.Index(payload, ","); strings.HasPrefix(payload, "data:image/") && idx >= 0 {
		payload = payload[idx+1:]
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		common.LogImageProcessing("warn", "圖片非合法 base64", zap.Error(err))
		return fmt.Errorf("%w: %v", common.ErrInvalidImageFormat, err)
	}
	if int64(len(payload)) > c.config.Image.MaxSizeBytes {
		common.LogImageProcessing("warn", "圖片超過大小限制",
			zap.Int("size", len(payload)),
			zap.Int64("max_size", c.config.Image.MaxSizeBytes),
		)
		return common.ErrInvalidImageSize
	}
	return nil
}

// sanitizeBody 清理回應內容，避免把圖片資料寫進日誌
func sanitizeBody(body string) string {
	if strings.Contains(body, "data:image/") || (len(body) > 100 && strings.Contains(body, "base64")) {
		return "[IMAGE_DATA_REMOVED]"
	}
	if len(body) > 500 {
		return body[:500] + "..."
	}
	return body
}

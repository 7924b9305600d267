package scan

import (
	"errors"
	"net/http"

	"recipe-scanner/internal/core/ocr"
	"recipe-scanner/internal/core/ocr/cache"
	"recipe-scanner/internal/core/ocr/engine"
	"recipe-scanner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScanRequest 食譜卡掃描請求
type ScanRequest struct {
	Image  string   `json:"image" binding:"required"` // base64 圖片資料
	Fields []string `json:"fields" binding:"required"` // 欲擷取的欄位
}

// ScanResponse 掃描結果，鍵為欄位名稱
type ScanResponse struct {
	Results map[string]interface{} `json:"results"`
	Errors  map[string]string      `json:"errors,omitempty"`
}

// Handler 掃描處理程序
type Handler struct {
	engine *engine.Client
	cache  cache.Store
}

// NewHandler 創建掃描處理程序
func NewHandler(engineClient *engine.Client, cacheStore cache.Store) *Handler {
	return &Handler{
		engine: engineClient,
		cache:  cacheStore,
	}
}

// HandleScan 辨識食譜卡並擷取指定欄位
// 同一張圖片只會呼叫引擎一次，後續欄位走快取。
func (h *Handler) HandleScan(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("掃描請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	fields := make([]ocr.TargetField, 0, len(req.Fields))
	for _, name := range req.Fields {
		field, ok := parseField(name)
		if !ok {
			common.LogWarn("不支援的辨識目標欄位",
				zap.String("field", name),
				zap.String("request_id", requestID),
			)
			c.JSON(common.ErrUnrecognizedField.Status, gin.H{
				"error": common.ErrUnrecognizedField.Message,
				"code":  common.ErrUnrecognizedField.Code,
				"field": name,
			})
			return
		}
		fields = append(fields, field)
	}

	common.LogInfo("開始處理掃描請求",
		zap.String("request_id", requestID),
		zap.String("image_type", imageType(req.Image)),
		zap.Int("fields", len(fields)),
	)

	result, err := h.recognize(c, req.Image)
	if err != nil {
		status := http.StatusInternalServerError
		var custom *common.CustomError
		if errors.As(err, &custom) {
			status = custom.Status
		}
		common.LogError("辨識引擎呼叫失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	resp := ScanResponse{Results: make(map[string]interface{})}
	for _, field := range fields {
		value, err := ocr.StructureField(*result, field)
		if err != nil {
			if resp.Errors == nil {
				resp.Errors = make(map[string]string)
			}
			resp.Errors[string(field)] = err.Error()
			continue
		}
		resp.Results[string(field)] = value
	}

	common.LogInfo("掃描請求完成",
		zap.String("request_id", requestID),
		zap.Int("extracted", len(resp.Results)),
		zap.Int("failed", len(resp.Errors)),
	)

	c.JSON(http.StatusOK, resp)
}

// recognize 先查快取，未命中才呼叫引擎
func (h *Handler) recognize(c *gin.Context, image string) (*ocr.Result, error) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, image); err == nil {
			return cached, nil
		}
	}

	result, err := h.engine.Recognize(ctx, image)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, image, result); err != nil {
			common.LogWarn("快取寫入失敗", zap.Error(err))
		}
	}
	return result, nil
}

// parseField 將欄位名稱轉為辨識目標
func parseField(name string) (ocr.TargetField, bool) {
	switch ocr.TargetField(name) {
	case ocr.FieldTitle, ocr.FieldDescription, ocr.FieldPersons, ocr.FieldTime,
		ocr.FieldPreparation, ocr.FieldIngredients, ocr.FieldTags, ocr.FieldImage:
		return ocr.TargetField(name), true
	}
	return "", false
}

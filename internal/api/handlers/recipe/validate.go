package recipe

import (
	"net/http"

	"recipe-scanner/internal/core/catalog"
	"recipe-scanner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidateTagsRequest 標籤驗證請求
type ValidateTagsRequest struct {
	Tags []common.Tag `json:"tags" binding:"required"`
}

// ValidateTagsResponse 驗證後的標籤，Matched 為命中目錄的既有標籤
type ValidateTagsResponse struct {
	Tags    []common.Tag `json:"tags"`
	Matched []common.Tag `json:"matched"`
}

// ValidateIngredientsRequest 食材驗證請求
type ValidateIngredientsRequest struct {
	Ingredients []common.Ingredient `json:"ingredients" binding:"required"`
}

// ValidateIngredientsResponse 驗證後的食材，Matched 為命中目錄的既有食材
type ValidateIngredientsResponse struct {
	Ingredients []common.Ingredient `json:"ingredients"`
	Matched     []common.Ingredient `json:"matched"`
}

// HandleValidateTags 以目錄比對使用者輸入的標籤
// 命中目錄的標籤以目錄中的記錄取代，其餘原樣保留。
func (h *Handler) HandleValidateTags(c *gin.Context) {
	var req ValidateTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	common.LogDebug("待驗證標籤", zap.String("tags", common.FormatTags(req.Tags)))

	var matched []common.Tag
	processed := catalog.ProcessTagsForValidation(req.Tags, h.store.FindSimilarTags, func(tag common.Tag) {
		matched = append(matched, tag)
	})

	common.LogInfo("標籤驗證完成",
		zap.Int("proposed", len(req.Tags)),
		zap.Int("matched", len(matched)),
	)

	c.JSON(http.StatusOK, ValidateTagsResponse{
		Tags:    processed,
		Matched: matched,
	})
}

// HandleValidateIngredients 以目錄比對使用者輸入的食材
// 命中時沿用目錄記錄，但使用者填寫的數量與單位優先。
func (h *Handler) HandleValidateIngredients(c *gin.Context) {
	var req ValidateIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	common.LogDebug("待驗證食材", zap.String("ingredients", common.FormatIngredients(req.Ingredients)))

	var matched []common.Ingredient
	processed := catalog.ProcessIngredientsForValidation(req.Ingredients, h.store.FindSimilarIngredients, func(ing common.Ingredient) {
		matched = append(matched, ing)
	})

	common.LogInfo("食材驗證完成",
		zap.Int("proposed", len(req.Ingredients)),
		zap.Int("matched", len(matched)),
	)

	c.JSON(http.StatusOK, ValidateIngredientsResponse{
		Ingredients: processed,
		Matched:     matched,
	})
}

package recipe

import (
	"errors"
	"net/http"
	"time"

	"recipe-scanner/internal/core/catalog"
	"recipe-scanner/internal/core/search"
	"recipe-scanner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SearchRequest 食譜搜尋請求
// Filters 的鍵為篩選類別，值為該類別已選的篩選值。
type SearchRequest struct {
	Filters map[string][]string `json:"filters"`
	Month   string              `json:"month,omitempty"` // 未指定時以伺服器當前月份計算季節
}

// SearchResponse 搜尋結果與衍生集合
type SearchResponse struct {
	Recipes     []common.Recipe     `json:"recipes"`
	Titles      []string            `json:"titles"`
	Ingredients []common.Ingredient `json:"ingredients"`
	Tags        []string            `json:"tags"`
}

// Handler 食譜處理程序
type Handler struct {
	store *catalog.Store
}

// NewHandler 創建新的食譜處理程序
func NewHandler(store *catalog.Store) *Handler {
	return &Handler{store: store}
}

// HandleList 列出所有食譜
func (h *Handler) HandleList(c *gin.Context) {
	recipes := h.store.Recipes()
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

// HandleCreate 新增食譜
func (h *Handler) HandleCreate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var recipe common.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		common.LogError("食譜格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	created, err := h.store.AddRecipe(recipe)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateRecipe) {
			common.LogWarn("重複的食譜",
				zap.String("request_id", requestID),
				zap.String("title", recipe.Title),
			)
			c.JSON(http.StatusConflict, gin.H{
				"error": common.ErrDuplicateRecipe.Message,
				"code":  common.ErrDuplicateRecipe.Code,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	common.LogInfo("食譜已新增",
		zap.String("request_id", requestID),
		zap.String("recipe_id", created.ID),
		zap.String("title", created.Title),
	)

	c.JSON(http.StatusCreated, created)
}

// HandleUpdate 更新食譜
func (h *Handler) HandleUpdate(c *gin.Context) {
	var recipe common.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	recipe.ID = c.Param("id")

	if err := h.store.UpdateRecipe(recipe); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// HandleDelete 刪除食譜
func (h *Handler) HandleDelete(c *gin.Context) {
	if err := h.store.DeleteRecipe(c.Param("id")); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleSearch 依篩選條件搜尋食譜
// 類別之間取交集，同類別的多個值取聯集。
func (h *Handler) HandleSearch(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("搜尋請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	state := search.NewFilterState()
	for category, values := range req.Filters {
		for _, value := range values {
			state.Add(common.FilterCategory(category), value)
		}
	}

	month := req.Month
	if month == "" {
		month = common.Month(time.Now())
	}

	matched := search.ApplyFilters(h.store.Recipes(), state, month)
	derived := search.DeriveCollections(matched)

	common.LogInfo("搜尋完成",
		zap.String("request_id", requestID),
		zap.Int("filters", len(state)),
		zap.Int("matched", len(matched)),
	)

	c.JSON(http.StatusOK, SearchResponse{
		Recipes:     matched,
		Titles:      derived.Titles,
		Ingredients: derived.Ingredients,
		Tags:        derived.TagNames,
	})
}

package recipe

import (
	"net/http"

	"recipe-scanner/internal/core/catalog"
	"recipe-scanner/internal/core/search"
	"recipe-scanner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShoppingListRequest 採購清單建立請求
// RecipeIDs 為空時以所有食譜建立清單。
type ShoppingListRequest struct {
	RecipeIDs []string            `json:"recipe_ids"`
	Filters   map[string][]string `json:"filters,omitempty"`
}

// TogglePurchasedRequest 切換採購狀態請求
type TogglePurchasedRequest struct {
	Items  []common.ShoppingListItem `json:"items" binding:"required"`
	Target common.ShoppingListItem   `json:"target" binding:"required"`
}

// HandleShoppingList 以選取的食譜合併出採購清單
// 同名同單位的食材合併數量，並記錄來源食譜。
func (h *Handler) HandleShoppingList(c *gin.Context) {
	var req ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	recipes := h.store.Recipes()
	if len(req.RecipeIDs) > 0 {
		wanted := make(map[string]bool, len(req.RecipeIDs))
		for _, id := range req.RecipeIDs {
			wanted[id] = true
		}
		selected := recipes[:0:0]
		for _, r := range recipes {
			if wanted[r.ID] {
				selected = append(selected, r)
			}
		}
		recipes = selected
	}

	items := catalog.BuildShoppingList(recipes)

	if len(req.Filters) > 0 {
		state := search.NewFilterState()
		for category, values := range req.Filters {
			for _, value := range values {
				state.Add(common.FilterCategory(category), value)
			}
		}
		items = search.FilterShoppingItems(items, state)
	}

	common.LogInfo("採購清單已建立",
		zap.Int("recipes", len(recipes)),
		zap.Int("items", len(items)),
	)

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// HandleTogglePurchased 切換單一品項的採購狀態
func (h *Handler) HandleTogglePurchased(c *gin.Context) {
	var req TogglePurchasedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": catalog.TogglePurchased(req.Items, req.Target),
	})
}

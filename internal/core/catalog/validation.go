package catalog

import (
	"strings"

	"recipe-scanner/internal/pkg/common"

	"go.uber.org/zap"
)

// TagLookup 依名稱查詢相似標籤的目錄查詢函式，由呼叫端注入
type TagLookup func(name string) []common.Tag

// IngredientLookup 依名稱查詢相似食材的目錄查詢函式，由呼叫端注入
type IngredientLookup func(name string) []common.Ingredient

// ProcessTagsForValidation 將新提議的標籤與目錄比對
//
// 名稱（不分大小寫）與某個目錄候選完全相同的提議視為精確命中：
// 以目錄中的紀錄同步呼叫一次 onExactMatch，並自回傳列表排除。
// 沒有精確命中的提議依原始順序原樣保留在回傳列表中。
func ProcessTagsForValidation(proposed []common.Tag, findSimilar TagLookup, onExactMatch func(common.Tag)) []common.Tag {
	var remaining []common.Tag
	for _, tag := range proposed {
		matched := false
		for _, candidate := range findSimilar(tag.Name) {
			if strings.EqualFold(candidate.Name, tag.Name) {
				onExactMatch(candidate)
				matched = true
				break
			}
		}
		if !matched {
			remaining = append(remaining, tag)
		}
	}

	common.LogDebug("標籤驗證完成",
		zap.Int("proposed", len(proposed)),
		zap.Int("remaining", len(remaining)),
	)
	return remaining
}

// ProcessIngredientsForValidation 將新提議的食材與目錄比對
//
// 精確命中時以目錄紀錄為底（id、類型、產季來自目錄），
// 使用者提供的數量與單位非空時優先保留，否則退回目錄自己的值；
// 合成後的紀錄同步傳給 onExactMatch，提議自回傳列表排除。
func ProcessIngredientsForValidation(proposed []common.Ingredient, findSimilar IngredientLookup, onExactMatch func(common.Ingredient)) []common.Ingredient {
	var remaining []common.Ingredient
	for _, ing := range proposed {
		matched := false
		for _, candidate := range findSimilar(ing.Name) {
			if strings.EqualFold(candidate.Name, ing.Name) {
				onExactMatch(enrichIngredient(candidate, ing))
				matched = true
				break
			}
		}
		if !matched {
			remaining = append(remaining, ing)
		}
	}

	common.LogDebug("食材驗證完成",
		zap.Int("proposed", len(proposed)),
		zap.Int("remaining", len(remaining)),
	)
	return remaining
}

// enrichIngredient 合併目錄紀錄與使用者輸入
func enrichIngredient(catalog, user common.Ingredient) common.Ingredient {
	enriched := catalog
	if user.Quantity != "" {
		enriched.Quantity = user.Quantity
	}
	if user.Unit != "" {
		enriched.Unit = user.Unit
	}
	return enriched
}

// ArrayOfType 回傳類型等於 t 的食材，保持原始順序
func ArrayOfType(ingredients []common.Ingredient, t common.IngredientType) []common.Ingredient {
	var matched []common.Ingredient
	for _, ing := range ingredients {
		if ing.Type == t {
			matched = append(matched, ing)
		}
	}
	return matched
}

// ArrayWithoutType 回傳類型不等於 t 的食材，即 ArrayOfType 的補集
func ArrayWithoutType(ingredients []common.Ingredient, t common.IngredientType) []common.Ingredient {
	var rest []common.Ingredient
	for _, ing := range ingredients {
		if ing.Type != t {
			rest = append(rest, ing)
		}
	}
	return rest
}

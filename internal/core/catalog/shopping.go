package catalog

import (
	"strconv"

	"recipe-scanner/internal/pkg/common"

	"go.uber.org/zap"
)

// BuildShoppingList 由選取的食譜合併產生購物清單
//
// 相同項目（類型+名稱+單位，見 ShoppingListItem.Equal）跨食譜
// 合併為一條：數量皆為數值時相加，否則以「+」串接保留原文
// （數量可能是「少許」這類文字）。每條項目記下貢獻它的食譜
// 標題。項目順序為首次出現順序。
func BuildShoppingList(recipes []common.Recipe) []common.ShoppingListItem {
	var items []common.ShoppingListItem

	for _, recipe := range recipes {
		for _, ing := range recipe.Ingredients {
			candidate := common.ShoppingListItem{
				Type:     common.FilterCategoryOf(ing.Type),
				Name:     ing.Name,
				Quantity: ing.Quantity,
				Unit:     ing.Unit,
				Recipes:  []string{recipe.Title},
			}

			merged := false
			for i := range items {
				if items[i].Equal(candidate) {
					items[i].Quantity = mergeQuantities(items[i].Quantity, ing.Quantity)
					items[i].Recipes = appendTitle(items[i].Recipes, recipe.Title)
					merged = true
					break
				}
			}
			if !merged {
				items = append(items, candidate)
			}
		}
	}

	common.LogDebug("購物清單已產生",
		zap.Int("recipes", len(recipes)),
		zap.Int("items", len(items)),
	)
	return items
}

// TogglePurchased 切換與 target 相同項目的購買旗標
func TogglePurchased(items []common.ShoppingListItem, target common.ShoppingListItem) []common.ShoppingListItem {
	for i := range items {
		if items[i].Equal(target) {
			items[i].Purchased = !items[i].Purchased
		}
	}
	return items
}

// mergeQuantities 合併兩個數量字串
// 雙方皆為數值時相加；任一方為文字時以「+」串接，保留原文。
func mergeQuantities(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return strconv.FormatFloat(na+nb, 'f', -1, 64)
	}
	return a + " + " + b
}

func appendTitle(titles []string, title string) []string {
	for _, t := range titles {
		if t == title {
			return titles
		}
	}
	return append(titles, title)
}

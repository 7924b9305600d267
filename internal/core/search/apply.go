package search

import (
	"regexp"
	"strconv"
	"strings"

	"recipe-scanner/internal/pkg/common"

	"go.uber.org/zap"
)

// ApplyFilters 對食譜集合套用篩選狀態
//
// 食譜必須滿足狀態中每一個有值的類別（AND），類別內的多個值
// 任一命中即可（OR）。結果保持輸入集合的相對順序。month 為
// 目前月份標記（見 common.Month），供產季判斷使用。
func ApplyFilters(recipes []common.Recipe, state FilterState, month string) []common.Recipe {
	if len(state) == 0 {
		return append([]common.Recipe(nil), recipes...)
	}

	var filtered []common.Recipe
	for _, recipe := range recipes {
		if recipeMatches(recipe, state, month) {
			filtered = append(filtered, recipe)
		}
	}

	common.LogDebug("篩選完成",
		zap.Int("input", len(recipes)),
		zap.Int("matched", len(filtered)),
		zap.Int("categories", len(state)),
	)
	return filtered
}

func recipeMatches(recipe common.Recipe, state FilterState, month string) bool {
	for category, values := range state {
		if len(values) == 0 {
			continue
		}
		if !matchCategory(recipe, category, values, month) {
			return false
		}
	}
	return true
}

// matchCategory 單一類別的命中規則
func matchCategory(recipe common.Recipe, category common.FilterCategory, values []string, month string) bool {
	switch category {
	case common.FilterTitle:
		return matchTitle(recipe.Title, values)
	case common.FilterPrepTime:
		return matchPrepTime(recipe.Time, values)
	case common.FilterSeason:
		return matchSeason(recipe, values, month)
	case common.FilterTags:
		for _, tag := range recipe.Tags {
			if containsString(values, tag.Name) {
				return true
			}
		}
		return false
	case common.FilterPurchased:
		// 已購買只對購物清單有意義，對食譜不構成限制
		return true
	default:
		if category.IsIngredientCategory() {
			ingredientType := common.IngredientType(category)
			for _, ing := range recipe.Ingredients {
				if ing.Type == ingredientType && containsString(values, ing.Name) {
					return true
				}
			}
			return false
		}
		common.LogWarn("未知的篩選類別",
			zap.String("category", string(category)),
		)
		return true
	}
}

// matchTitle 標題包含任一搜尋字串即命中（大小寫敏感）
func matchTitle(title string, values []string) bool {
	for _, v := range values {
		if strings.Contains(title, v) {
			return true
		}
	}
	return false
}

// matchPrepTime 總時間落在任一選定區間內即命中
func matchPrepTime(minutes int, values []string) bool {
	for _, v := range values {
		lo, hi, ok := parseTimeBucket(v)
		if !ok {
			continue
		}
		if minutes >= lo && minutes <= hi {
			return true
		}
	}
	return false
}

// matchSeason 依食材產季判斷食譜是否當季
// 任一食材的產季列表包含目前月份或全年標記即為當季。
func matchSeason(recipe common.Recipe, values []string, month string) bool {
	inSeason := false
	for _, ing := range recipe.Ingredients {
		for _, s := range ing.Seasons {
			if s == common.SeasonAll || s == month {
				inSeason = true
			}
		}
	}
	want := containsString(values, "true")
	if containsString(values, "false") && !containsString(values, "true") {
		return !inSeason
	}
	if want {
		return inSeason
	}
	return true
}

var timeBucketPattern = regexp.MustCompile(`^([<>]?)\s*(\d+)(?:\s*-\s*(\d+))?`)

// parseTimeBucket 解析時間區間標籤
// 支援 "15-20 min"、"<15 min"、">30 min" 三種形式，回傳閉區間。
func parseTimeBucket(label string) (lo, hi int, ok bool) {
	m := timeBucketPattern.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0, 0, false
	}
	first, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	switch {
	case m[1] == "<":
		return 0, first - 1, true
	case m[1] == ">":
		return first + 1, 1<<31 - 1, true
	case m[3] != "":
		second, err := strconv.Atoi(m[3])
		if err != nil {
			return 0, 0, false
		}
		return first, second, true
	default:
		return first, first, true
	}
}

// FilterShoppingItems 對購物清單套用篩選狀態
// 食材類型類別比對項目的類型與名稱，已購買類別比對購買旗標，
// 其餘對購物清單沒有意義的類別不構成限制。
func FilterShoppingItems(items []common.ShoppingListItem, state FilterState) []common.ShoppingListItem {
	if len(state) == 0 {
		return append([]common.ShoppingListItem(nil), items...)
	}

	var filtered []common.ShoppingListItem
	for _, item := range items {
		if itemMatches(item, state) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func itemMatches(item common.ShoppingListItem, state FilterState) bool {
	for category, values := range state {
		if len(values) == 0 {
			continue
		}
		switch {
		case category == common.FilterPurchased:
			if !containsString(values, strconv.FormatBool(item.Purchased)) {
				return false
			}
		case category.IsIngredientCategory():
			if item.Type != category || !containsString(values, item.Name) {
				return false
			}
		}
	}
	return true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

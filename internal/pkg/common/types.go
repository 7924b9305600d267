package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IngredientType 食材類型
type IngredientType string

const (
	TypeVegetables   IngredientType = "Vegetables"
	TypeFruits       IngredientType = "Fruits"
	TypeMeat         IngredientType = "Meat"
	TypeFish         IngredientType = "Fish"
	TypeDairy        IngredientType = "Dairy"
	TypeGrains       IngredientType = "Grains"
	TypeNutsAndSeeds IngredientType = "NutsAndSeeds"
	TypeSpices       IngredientType = "Spices"
	TypeOils         IngredientType = "Oils"
	TypeLegumes      IngredientType = "Legumes"
	// TypeUndefined 表示未知或尚未分類的食材
	TypeUndefined IngredientType = "undefined"
)

// IngredientTypes 所有實際的食材類型（不含 undefined）
var IngredientTypes = []IngredientType{
	TypeVegetables,
	TypeFruits,
	TypeMeat,
	TypeFish,
	TypeDairy,
	TypeGrains,
	TypeNutsAndSeeds,
	TypeSpices,
	TypeOils,
	TypeLegumes,
}

// SeasonAll 表示全年皆產季的萬用標記；月份以 "1".."12" 表示
const SeasonAll = "all"

// Month 取得 t 對應的月份標記
func Month(t time.Time) string {
	return strconv.Itoa(int(t.Month()))
}

// Ingredient 食材
type Ingredient struct {
	ID       int            `json:"id,omitempty"`
	Name     string         `json:"name"`
	Unit     string         `json:"unit"`
	Quantity string         `json:"quantity,omitempty"` // 允許非數值，如「少許」
	Type     IngredientType `json:"type"`
	Seasons  []string       `json:"seasons,omitempty"`
}

// Equal 判斷兩個食材是否相同
// 名稱與單位必須一致；任一方類型為 undefined 時不比較類型。
// 數量與產季永遠不參與比較。
func (i Ingredient) Equal(other Ingredient) bool {
	if i.Name != other.Name || i.Unit != other.Unit {
		return false
	}
	if i.Type == TypeUndefined || other.Type == TypeUndefined {
		return true
	}
	return i.Type == other.Type
}

// Tag 標籤
type Tag struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// Equal 標籤只比較名稱
func (t Tag) Equal(other Tag) bool {
	return t.Name == other.Name
}

// PreparationStep 備料步驟，列表中的位置即步驟編號
type PreparationStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Recipe 食譜
type Recipe struct {
	ID          string            `json:"id,omitempty"`
	Image       string            `json:"image"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Tags        []Tag             `json:"tags"`
	Persons     int               `json:"persons"`
	Ingredients []Ingredient      `json:"ingredients"`
	Seasons     []string          `json:"seasons"`
	Preparation []PreparationStep `json:"preparation"`
	Time        int               `json:"time"` // 總準備時間（分鐘）
}

// IsRecipePartiallyEqual 判斷兩份食譜是否為近似重複
// 只比較圖片、標題與描述，用於新增前的重複偵測。
func IsRecipePartiallyEqual(a, b Recipe) bool {
	return a.Image == b.Image && a.Title == b.Title && a.Description == b.Description
}

// IsRecipeEqual 判斷兩份食譜是否完全相同
// 所有欄位都參與比較，巢狀列表為順序敏感的深度比較，
// 用於確認快取列表中的食譜是否仍然存在。
func IsRecipeEqual(a, b Recipe) bool {
	if !IsRecipePartiallyEqual(a, b) {
		return false
	}
	if a.Persons != b.Persons || a.Time != b.Time {
		return false
	}
	if len(a.Tags) != len(b.Tags) {
		return false
	}
	for i := range a.Tags {
		if a.Tags[i] != b.Tags[i] {
			return false
		}
	}
	if len(a.Ingredients) != len(b.Ingredients) {
		return false
	}
	for i := range a.Ingredients {
		if !ingredientDeepEqual(a.Ingredients[i], b.Ingredients[i]) {
			return false
		}
	}
	if len(a.Seasons) != len(b.Seasons) {
		return false
	}
	for i := range a.Seasons {
		if a.Seasons[i] != b.Seasons[i] {
			return false
		}
	}
	if len(a.Preparation) != len(b.Preparation) {
		return false
	}
	for i := range a.Preparation {
		if a.Preparation[i] != b.Preparation[i] {
			return false
		}
	}
	return true
}

// ingredientDeepEqual 完全比較（含數量與產季），僅供 IsRecipeEqual 使用
func ingredientDeepEqual(a, b Ingredient) bool {
	if a.ID != b.ID || a.Name != b.Name || a.Unit != b.Unit || a.Quantity != b.Quantity || a.Type != b.Type {
		return false
	}
	if len(a.Seasons) != len(b.Seasons) {
		return false
	}
	for i := range a.Seasons {
		if a.Seasons[i] != b.Seasons[i] {
			return false
		}
	}
	return true
}

// ShoppingListItem 購物清單項目
type ShoppingListItem struct {
	Type      FilterCategory `json:"type"`
	Name      string         `json:"name"`
	Quantity  string         `json:"quantity"`
	Unit      string         `json:"unit"`
	Recipes   []string       `json:"recipes"` // 貢獻此項目的食譜標題
	Purchased bool           `json:"purchased"`
}

// Equal 購物清單項目只比較類型、名稱與單位
func (s ShoppingListItem) Equal(other ShoppingListItem) bool {
	return s.Type == other.Type && s.Name == other.Name && s.Unit == other.Unit
}

// FilterCategory 篩選類別
// 涵蓋所有食材類型，加上非食材的類別（標題、時間、產季、標籤、已購買）。
type FilterCategory string

const (
	FilterTitle     FilterCategory = "Title"
	FilterPrepTime  FilterCategory = "PrepTime"
	FilterSeason    FilterCategory = "Season"
	FilterTags      FilterCategory = "Tags"
	FilterPurchased FilterCategory = "Purchased"
)

// FilterCategoryOf 將食材類型轉為對應的篩選類別
func FilterCategoryOf(t IngredientType) FilterCategory {
	return FilterCategory(t)
}

// IsIngredientCategory 判斷類別是否對應某個食材類型
func (c FilterCategory) IsIngredientCategory() bool {
	for _, t := range IngredientTypes {
		if FilterCategory(t) == c {
			return true
		}
	}
	return false
}

// FormatIngredients 格式化食材列表
func FormatIngredients(ingredients []Ingredient) string {
	var sb strings.Builder
	for _, ing := range ingredients {
		sb.WriteString(fmt.Sprintf("- %s (%s): %s%s\n",
			ing.Name, ing.Type, ing.Quantity, ing.Unit))
	}
	return sb.String()
}

// FormatTags 格式化標籤列表
func FormatTags(tags []Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return StringSliceToString(names)
}

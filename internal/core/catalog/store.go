package catalog

import (
	"strings"
	"sync"

	"recipe-scanner/internal/pkg/common"

	"go.uber.org/zap"
)

// Store 食譜目錄的記憶體儲存
//
// 行動端以本地資料庫保存食譜與食材目錄；這裡以互斥鎖保護的
// 記憶體集合代替，核心邏輯一律透過已實體化的切片操作，
// 不直接下查詢。
type Store struct {
	mu          sync.RWMutex
	recipes     []common.Recipe
	ingredients []common.Ingredient
	tags        []common.Tag
	nextID      int
}

// NewStore 建立空的目錄
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Recipes 回傳所有食譜的副本
func (s *Store) Recipes() []common.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]common.Recipe(nil), s.recipes...)
}

// AddRecipe 新增食譜
// 以部分相等（圖片+標題+描述）偵測近似重複，重複時拒絕新增。
func (s *Store) AddRecipe(recipe common.Recipe) (common.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.recipes {
		if common.IsRecipePartiallyEqual(existing, recipe) {
			common.LogWarn("拒絕新增近似重複的食譜",
				zap.String("title", recipe.Title),
			)
			return common.Recipe{}, common.ErrDuplicateRecipe
		}
	}

	if recipe.ID == "" {
		recipe.ID = common.GenerateUUID()
	}
	s.recipes = append(s.recipes, recipe)

	common.LogInfo("食譜已新增",
		zap.String("id", recipe.ID),
		zap.String("title", recipe.Title),
	)
	return recipe, nil
}

// UpdateRecipe 以 ID 取代既有食譜
func (s *Store) UpdateRecipe(recipe common.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.recipes {
		if existing.ID == recipe.ID {
			s.recipes[i] = recipe
			return nil
		}
	}
	return common.ErrNotFound
}

// DeleteRecipe 以 ID 刪除食譜
// 消費端透過重新查詢並以標題比對舊列表來偵測食譜消失。
func (s *Store) DeleteRecipe(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.recipes {
		if existing.ID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

// AddIngredient 將食材加入目錄，已存在（Equal）時回傳既有紀錄
func (s *Store) AddIngredient(ing common.Ingredient) common.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.ingredients {
		if existing.Equal(ing) {
			return existing
		}
	}
	if ing.ID == 0 {
		ing.ID = s.nextID
		s.nextID++
	}
	s.ingredients = append(s.ingredients, ing)
	return ing
}

// AddTag 將標籤加入目錄，已存在時回傳既有紀錄
func (s *Store) AddTag(tag common.Tag) common.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tags {
		if existing.Equal(tag) {
			return existing
		}
	}
	if tag.ID == 0 {
		tag.ID = s.nextID
		s.nextID++
	}
	s.tags = append(s.tags, tag)
	return tag
}

// FindSimilarIngredients 依名稱查詢相似食材（不分大小寫的包含比對）
func (s *Store) FindSimilarIngredients(name string) []common.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(name)
	var candidates []common.Ingredient
	for _, ing := range s.ingredients {
		if strings.Contains(strings.ToLower(ing.Name), lower) {
			candidates = append(candidates, ing)
		}
	}
	return candidates
}

// FindSimilarTags 依名稱查詢相似標籤（不分大小寫的包含比對）
func (s *Store) FindSimilarTags(name string) []common.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(name)
	var candidates []common.Tag
	for _, tag := range s.tags {
		if strings.Contains(strings.ToLower(tag.Name), lower) {
			candidates = append(candidates, tag)
		}
	}
	return candidates
}

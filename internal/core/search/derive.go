package search

import (
	"recipe-scanner/internal/pkg/common"
)

// Titles 取出篩選結果中的食譜標題，保持原始順序
func Titles(recipes []common.Recipe) []string {
	titles := make([]string, 0, len(recipes))
	for _, r := range recipes {
		titles = append(titles, r.Title)
	}
	return titles
}

// UniqueIngredients 取出篩選結果中出現過的所有食材
// 以名稱+單位+類型去重（見 Ingredient.Equal），保持首次出現順序。
func UniqueIngredients(recipes []common.Recipe) []common.Ingredient {
	var unique []common.Ingredient
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			seen := false
			for _, u := range unique {
				if u.Equal(ing) {
					seen = true
					break
				}
			}
			if !seen {
				unique = append(unique, ing)
			}
		}
	}
	return unique
}

// UniqueTagNames 取出篩選結果中出現過的所有標籤名稱
// 去重並保持首次出現順序。
func UniqueTagNames(recipes []common.Recipe) []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range recipes {
		for _, tag := range r.Tags {
			if seen[tag.Name] {
				continue
			}
			seen[tag.Name] = true
			names = append(names, tag.Name)
		}
	}
	return names
}

// Derived 篩選結果的衍生集合，供篩選 UI 顯示可用選項
type Derived struct {
	Titles      []string            `json:"titles"`
	Ingredients []common.Ingredient `json:"ingredients"`
	TagNames    []string            `json:"tag_names"`
}

// DeriveCollections 一次計算所有衍生集合
// 篩選結果每次變動都必須重新計算。
func DeriveCollections(recipes []common.Recipe) Derived {
	return Derived{
		Titles:      Titles(recipes),
		Ingredients: UniqueIngredients(recipes),
		TagNames:    UniqueTagNames(recipes),
	}
}

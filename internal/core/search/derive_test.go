package search

import (
	"reflect"
	"testing"

	"recipe-scanner/internal/pkg/common"
)

func TestDeriveCollections(t *testing.T) {
	recipes := []common.Recipe{
		{
			Title: "Pesto Pasta",
			Tags:  []common.Tag{{Name: "Vegetarian"}, {Name: "Quick"}},
			Ingredients: []common.Ingredient{
				{Name: "Basil", Unit: "g", Type: common.TypeVegetables},
				{Name: "Pine Nuts", Unit: "g", Type: common.TypeNutsAndSeeds},
			},
		},
		{
			Title: "Caprese",
			Tags:  []common.Tag{{Name: "Vegetarian"}},
			Ingredients: []common.Ingredient{
				// 與 Pesto Pasta 相同的羅勒，數量不同也視為同一食材
				{Name: "Basil", Unit: "g", Quantity: "20", Type: common.TypeVegetables},
				{Name: "Mozzarella", Unit: "g", Type: common.TypeDairy},
			},
		},
	}

	derived := DeriveCollections(recipes)

	if !reflect.DeepEqual(derived.Titles, []string{"Pesto Pasta", "Caprese"}) {
		t.Errorf("titles = %v", derived.Titles)
	}

	wantIngredients := []string{"Basil", "Pine Nuts", "Mozzarella"}
	names := make([]string, 0, len(derived.Ingredients))
	for _, ing := range derived.Ingredients {
		names = append(names, ing.Name)
	}
	if !reflect.DeepEqual(names, wantIngredients) {
		t.Errorf("ingredients = %v, want %v (deduped, first-seen order)", names, wantIngredients)
	}

	if !reflect.DeepEqual(derived.TagNames, []string{"Vegetarian", "Quick"}) {
		t.Errorf("tag names = %v", derived.TagNames)
	}
}

func TestDeriveCollectionsEmpty(t *testing.T) {
	derived := DeriveCollections(nil)
	if len(derived.Titles) != 0 || len(derived.Ingredients) != 0 || len(derived.TagNames) != 0 {
		t.Errorf("derived from empty input = %+v", derived)
	}
}

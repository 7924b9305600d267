package common

import (
	"testing"
	"time"
)

func sampleRecipe() Recipe {
	return Recipe{
		Image:       "card.jpg",
		Title:       "Pesto Pasta",
		Description: "Quick dinner",
		Tags:        []Tag{{Name: "Vegetarian"}},
		Persons:     2,
		Ingredients: []Ingredient{
			{Name: "Basil", Unit: "g", Quantity: "30", Type: TypeVegetables, Seasons: []string{"6", "7"}},
		},
		Seasons:     []string{"6"},
		Preparation: []PreparationStep{{Title: "Blend", Description: "Blend everything"}},
		Time:        20,
	}
}

func TestIsRecipePartiallyEqual(t *testing.T) {
	a := sampleRecipe()

	// 標籤、食材、人數、產季、步驟、時間的差異不影響部分相等
	b := sampleRecipe()
	b.Tags = nil
	b.Ingredients = nil
	b.Persons = 6
	b.Seasons = []string{"12"}
	b.Preparation = nil
	b.Time = 90
	if !IsRecipePartiallyEqual(a, b) {
		t.Error("partial equality must ignore non-identity fields")
	}

	for _, mutate := range []func(*Recipe){
		func(r *Recipe) { r.Image = "other.jpg" },
		func(r *Recipe) { r.Title = "Other" },
		func(r *Recipe) { r.Description = "Other" },
	} {
		c := sampleRecipe()
		mutate(&c)
		if IsRecipePartiallyEqual(a, c) {
			t.Errorf("partial equality must be sensitive to identity fields: %+v", c)
		}
	}
}

func TestIsRecipeEqual(t *testing.T) {
	a := sampleRecipe()
	b := sampleRecipe()
	if !IsRecipeEqual(a, b) {
		t.Fatal("identical recipes reported unequal")
	}

	tests := []struct {
		name   string
		mutate func(*Recipe)
	}{
		{"persons", func(r *Recipe) { r.Persons = 4 }},
		{"time", func(r *Recipe) { r.Time = 25 }},
		{"tag name", func(r *Recipe) { r.Tags[0].Name = "Vegan" }},
		{"ingredient quantity", func(r *Recipe) { r.Ingredients[0].Quantity = "40" }},
		{"ingredient season", func(r *Recipe) { r.Ingredients[0].Seasons[0] = "1" }},
		{"season list", func(r *Recipe) { r.Seasons = []string{"7"} }},
		{"step description", func(r *Recipe) { r.Preparation[0].Description = "Stir" }},
		{"step count", func(r *Recipe) { r.Preparation = append(r.Preparation, PreparationStep{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := sampleRecipe()
			tt.mutate(&c)
			if IsRecipeEqual(a, c) {
				t.Error("full equality must be sensitive to every field")
			}
		})
	}
}

func TestIsRecipeEqualOrderSensitive(t *testing.T) {
	a := sampleRecipe()
	a.Tags = []Tag{{Name: "Vegetarian"}, {Name: "Quick"}}
	b := sampleRecipe()
	b.Tags = []Tag{{Name: "Quick"}, {Name: "Vegetarian"}}

	if IsRecipeEqual(a, b) {
		t.Error("nested list comparison must be order sensitive")
	}
}

func TestIngredientEqual(t *testing.T) {
	base := Ingredient{Name: "Basil", Unit: "g", Type: TypeVegetables}

	tests := []struct {
		name  string
		other Ingredient
		want  bool
	}{
		{"same", Ingredient{Name: "Basil", Unit: "g", Type: TypeVegetables}, true},
		{"different quantity still equal", Ingredient{Name: "Basil", Unit: "g", Quantity: "30", Type: TypeVegetables}, true},
		{"different season still equal", Ingredient{Name: "Basil", Unit: "g", Type: TypeVegetables, Seasons: []string{"6"}}, true},
		{"undefined type matches anything", Ingredient{Name: "Basil", Unit: "g", Type: TypeUndefined}, true},
		{"different unit", Ingredient{Name: "Basil", Unit: "kg", Type: TypeVegetables}, false},
		{"different name", Ingredient{Name: "Mint", Unit: "g", Type: TypeVegetables}, false},
		{"different type", Ingredient{Name: "Basil", Unit: "g", Type: TypeSpices}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestShoppingListItemEqual(t *testing.T) {
	base := ShoppingListItem{Type: FilterCategoryOf(TypeDairy), Name: "Milk", Unit: "ml", Quantity: "200"}

	same := ShoppingListItem{Type: FilterCategoryOf(TypeDairy), Name: "Milk", Unit: "ml", Quantity: "500", Purchased: true, Recipes: []string{"Pancakes"}}
	if !base.Equal(same) {
		t.Error("quantity, purchased flag and recipes must not affect equality")
	}

	if base.Equal(ShoppingListItem{Type: FilterCategoryOf(TypeDairy), Name: "Milk", Unit: "l"}) {
		t.Error("unit must affect equality")
	}
}

func TestMonth(t *testing.T) {
	if got := Month(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)); got != "6" {
		t.Errorf("Month = %q, want 6", got)
	}
	if got := Month(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)); got != "12" {
		t.Errorf("Month = %q, want 12", got)
	}
}

func TestFilterCategoryIsIngredientCategory(t *testing.T) {
	if !FilterCategoryOf(TypeNutsAndSeeds).IsIngredientCategory() {
		t.Error("ingredient type category not recognized")
	}
	for _, c := range []FilterCategory{FilterTitle, FilterPrepTime, FilterSeason, FilterTags, FilterPurchased} {
		if c.IsIngredientCategory() {
			t.Errorf("%s wrongly classified as ingredient category", c)
		}
	}
}

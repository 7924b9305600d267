package catalog

import (
	"errors"
	"testing"

	"recipe-scanner/internal/pkg/common"
)

func TestStoreAddRecipeRejectsNearDuplicate(t *testing.T) {
	store := NewStore()

	original := common.Recipe{Image: "img.jpg", Title: "Pesto Pasta", Description: "Quick dinner"}
	added, err := store.AddRecipe(original)
	if err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}
	if added.ID == "" {
		t.Error("AddRecipe did not assign an id")
	}

	// 圖片+標題+描述相同即視為重複，其他欄位不同也一樣
	duplicate := original
	duplicate.Persons = 4
	duplicate.Time = 30
	if _, err := store.AddRecipe(duplicate); !errors.Is(err, common.ErrDuplicateRecipe) {
		t.Errorf("err = %v, want ErrDuplicateRecipe", err)
	}

	// 標題不同就不是重複
	other := original
	other.Title = "Pesto Pasta Deluxe"
	if _, err := store.AddRecipe(other); err != nil {
		t.Errorf("AddRecipe for different title: %v", err)
	}
}

func TestStoreUpdateAndDelete(t *testing.T) {
	store := NewStore()
	added, _ := store.AddRecipe(common.Recipe{Title: "Soup", Image: "a.jpg"})

	added.Time = 25
	if err := store.UpdateRecipe(added); err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}
	if got := store.Recipes(); got[0].Time != 25 {
		t.Errorf("update not applied: %+v", got[0])
	}

	if err := store.DeleteRecipe(added.ID); err != nil {
		t.Fatalf("DeleteRecipe: %v", err)
	}
	if got := store.Recipes(); len(got) != 0 {
		t.Errorf("recipes after delete = %v", got)
	}

	if err := store.DeleteRecipe("missing"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("delete missing = %v, want ErrNotFound", err)
	}
}

func TestStoreRecipesReturnsCopy(t *testing.T) {
	store := NewStore()
	store.AddRecipe(common.Recipe{Title: "Soup"})

	recipes := store.Recipes()
	recipes[0].Title = "Changed"

	if store.Recipes()[0].Title != "Soup" {
		t.Error("mutating the returned slice affected the store")
	}
}

func TestStoreFindSimilar(t *testing.T) {
	store := NewStore()
	store.AddIngredient(common.Ingredient{Name: "Parmesan", Unit: "g", Type: common.TypeDairy})
	store.AddIngredient(common.Ingredient{Name: "Parmesan Cheese", Unit: "g", Type: common.TypeDairy})
	store.AddIngredient(common.Ingredient{Name: "Basil", Unit: "g", Type: common.TypeVegetables})
	store.AddTag(common.Tag{Name: "Vegetarian"})

	if got := store.FindSimilarIngredients("parmesan"); len(got) != 2 {
		t.Errorf("FindSimilarIngredients = %v, want both Parmesan entries", got)
	}
	if got := store.FindSimilarIngredients("chili"); len(got) != 0 {
		t.Errorf("FindSimilarIngredients for unknown = %v", got)
	}
	if got := store.FindSimilarTags("VEGE"); len(got) != 1 {
		t.Errorf("FindSimilarTags = %v", got)
	}
}

func TestStoreAddIngredientDeduplicates(t *testing.T) {
	store := NewStore()
	first := store.AddIngredient(common.Ingredient{Name: "Basil", Unit: "g", Type: common.TypeVegetables})
	second := store.AddIngredient(common.Ingredient{Name: "Basil", Unit: "g", Type: common.TypeVegetables})

	if first.ID != second.ID {
		t.Errorf("duplicate ingredient got new id: %d vs %d", first.ID, second.ID)
	}
	if len(store.FindSimilarIngredients("Basil")) != 1 {
		t.Error("duplicate ingredient stored twice")
	}
}

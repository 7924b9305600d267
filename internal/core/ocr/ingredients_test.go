package ocr

import (
	"errors"
	"reflect"
	"testing"

	"recipe-scanner/internal/pkg/common"
)

func tableResult(lines ...string) Result {
	block := Block{}
	for _, l := range lines {
		block.Lines = append(block.Lines, Line{Text: l})
	}
	return Result{Blocks: []Block{block}}
}

func TestParseIngredientTable(t *testing.T) {
	res := tableResult(
		"Flour (g)",
		"Milk (ml)",
		"Eggs",
		"2p", "200", "150", "1",
		"4p", "400", "300", "2",
	)

	got, err := ParseIngredientTable(res)
	if err != nil {
		t.Fatalf("ParseIngredientTable returned error: %v", err)
	}

	want := []ScannedIngredient{
		{Name: "Flour", Unit: "g", Quantities: []ServingQuantity{{Persons: 2, Quantity: "200"}, {Persons: 4, Quantity: "400"}}},
		{Name: "Milk", Unit: "ml", Quantities: []ServingQuantity{{Persons: 2, Quantity: "150"}, {Persons: 4, Quantity: "300"}}},
		{Name: "Eggs", Unit: "", Quantities: []ServingQuantity{{Persons: 2, Quantity: "1"}, {Persons: 4, Quantity: "2"}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseIngredientTable = %#v, want %#v", got, want)
	}
}

func TestParseIngredientTableSkipsShortRows(t *testing.T) {
	res := tableResult(
		"Flour (g)",
		"Milk (ml)",
		"2p", "200", "150",
		"4p", "400", // 缺一個數量，整列捨棄
	)

	got, err := ParseIngredientTable(res)
	if err != nil {
		t.Fatalf("ParseIngredientTable returned error: %v", err)
	}

	for _, ing := range got {
		if len(ing.Quantities) != 1 {
			t.Errorf("ingredient %q has %d quantity rows, want 1", ing.Name, len(ing.Quantities))
		}
		if ing.Quantities[0].Persons != 2 {
			t.Errorf("ingredient %q kept row for %dp, want 2p", ing.Name, ing.Quantities[0].Persons)
		}
	}
}

func TestParseIngredientTableNoHeader(t *testing.T) {
	res := tableResult("Flour (g)", "Milk (ml)", "200", "150")

	_, err := ParseIngredientTable(res)
	if err == nil {
		t.Fatal("expected error for table without persons marker")
	}
	if !errors.Is(err, common.ErrNoTableHeader) {
		t.Errorf("error = %v, want ErrNoTableHeader", err)
	}
}

func TestParseIngredientTableMultipleBlocks(t *testing.T) {
	res := Result{Blocks: []Block{
		{Lines: []Line{{Text: "Butter (g)"}}},
		{Lines: []Line{{Text: "2p"}, {Text: "50"}}},
	}}

	got, err := ParseIngredientTable(res)
	if err != nil {
		t.Fatalf("ParseIngredientTable returned error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Butter" || got[0].Unit != "g" {
		t.Fatalf("unexpected ingredients: %#v", got)
	}
	if !reflect.DeepEqual(got[0].Quantities, []ServingQuantity{{Persons: 2, Quantity: "50"}}) {
		t.Errorf("quantities = %#v", got[0].Quantities)
	}
}

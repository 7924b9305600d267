package common

import (
	"strings"
	"testing"
)

func TestParseJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	if err := ParseJSON(`{"name":"Basil","extra":1}`, &v); err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if v.Name != "Basil" {
		t.Errorf("got %q, want %q", v.Name, "Basil")
	}
}

func TestParseJSONStrictRejectsUnknownFields(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	if err := ParseJSONStrict(`{"name":"Basil","extra":1}`, &v); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	var v map[string]interface{}
	if err := DecodeJSON(strings.NewReader(`{"a":1}{"b":2}`), &v); err == nil {
		t.Error("expected error for trailing data")
	}
}

func TestToJSON(t *testing.T) {
	got, err := ToJSON(map[string]int{"servings": 4})
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if got != `{"servings":4}` {
		t.Errorf("got %q", got)
	}
}

package ocr

import (
	"reflect"
	"testing"

	"recipe-scanner/internal/pkg/common"
)

func prepBlocks(texts ...string) Result {
	res := Result{}
	for _, t := range texts {
		res.Blocks = append(res.Blocks, Block{Text: t})
	}
	return res
}

func TestParsePreparation(t *testing.T) {
	tests := []struct {
		name   string
		blocks []string
		want   []common.PreparationStep
	}{
		{
			name:   "sequential numbered steps",
			blocks: []string{"1. Chop vegetables", "2. Heat oil", "3. Simmer 20 min"},
			want: []common.PreparationStep{
				{Title: "Chop vegetables"},
				{Title: "Heat oil"},
				{Title: "Simmer 20 min"},
			},
		},
		{
			name:   "continuation text becomes description",
			blocks: []string{"1. Chop vegetables", "cut into small cubes", "2. Heat oil"},
			want: []common.PreparationStep{
				{Title: "Chop vegetables", Description: "cut into small cubes"},
				{Title: "Heat oil"},
			},
		},
		{
			name:   "further continuation appended with newline",
			blocks: []string{"1. Chop vegetables", "cut into cubes", "about 1 cm", "2. Heat oil"},
			want: []common.PreparationStep{
				{Title: "Chop vegetables", Description: "cut into cubes\nabout 1 cm"},
				{Title: "Heat oil"},
			},
		},
		{
			name:   "implausible large number treated as continuation",
			blocks: []string{"1. Chop vegetables", "17 is no step marker", "2. Heat oil"},
			want: []common.PreparationStep{
				{Title: "Chop vegetables", Description: "17 is no step marker"},
				{Title: "Heat oil"},
			},
		},
		{
			name:   "bare number marker without title text",
			blocks: []string{"1.", "Chop vegetables", "2.", "Heat oil"},
			want: []common.PreparationStep{
				{Title: "Chop vegetables"},
				{Title: "Heat oil"},
			},
		},
		{
			name:   "skipped step backfilled with empty strings",
			blocks: []string{"1. Chop vegetables", "3. Simmer"},
			want: []common.PreparationStep{
				{Title: "Chop vegetables"},
				{},
				{Title: "Simmer"},
			},
		},
		{
			name:   "text before any marker starts the first step",
			blocks: []string{"preheat the oven", "1. Mix the dough"},
			want: []common.PreparationStep{
				{Title: "Mix the dough"},
			},
		},
		{
			name:   "title is case normalized",
			blocks: []string{"1. CHOP VEGETABLES"},
			want: []common.PreparationStep{
				{Title: "Chop vegetables"},
			},
		},
		{
			name:   "empty input",
			blocks: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePreparation(prepBlocks(tt.blocks...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePreparation(%v) = %#v, want %#v", tt.blocks, got, tt.want)
			}
		})
	}
}

func TestPlausibleStepNumber(t *testing.T) {
	tests := []struct {
		n       int
		current int
		want    bool
	}{
		{1, -1, true},   // 第一步
		{4, -1, true},   // 第一步允許到 4
		{5, -1, false},  // 超出 4 倍上限
		{2, 0, true},    // 第二步
		{17, 0, false},  // 誤讀的列點符號
		{3, 1, true},    // 之後收緊為 2 倍
		{5, 1, false},   // 2 * 2 = 4 為上限
		{6, 2, true},    // 3 * 2 = 6
		{0, 0, false},   // 步驟編號至少為 1
		{-1, 0, false},
	}

	for _, tt := range tests {
		if got := plausibleStepNumber(tt.n, tt.current); got != tt.want {
			t.Errorf("plausibleStepNumber(%d, %d) = %v, want %v", tt.n, tt.current, got, tt.want)
		}
	}
}

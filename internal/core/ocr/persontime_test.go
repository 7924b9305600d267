package ocr

import (
	"reflect"
	"testing"
)

// blocksOf 以每個區塊一行的方式建立辨識結果
func blocksOf(lines ...string) Result {
	res := Result{}
	for _, l := range lines {
		res.Blocks = append(res.Blocks, Block{
			Text:  l,
			Lines: []Line{{Text: l}},
		})
	}
	return res
}

func TestParsePersonsAndTime(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  interface{}
	}{
		{
			name:  "paired single person and time",
			lines: []string{"4p", "25m"},
			want:  PersonTime{Person: 4, Time: 25},
		},
		{
			name:  "paired multiple",
			lines: []string{"2p", "15m", "4p", "30m"},
			want:  []PersonTime{{Person: 2, Time: 15}, {Person: 4, Time: 30}},
		},
		{
			name:  "persons only, multiple values",
			lines: []string{"4p", "6p"},
			want:  []int{4, 6},
		},
		{
			name:  "persons only, single value",
			lines: []string{"4p"},
			want:  4,
		},
		{
			name:  "time only, single value",
			lines: []string{"25m"},
			want:  25,
		},
		{
			name:  "count mismatch falls back to persons",
			lines: []string{"2p", "4p", "25m"},
			want:  []int{2, 4},
		},
		{
			name:  "noise after first space is ignored",
			lines: []string{"4p ca. 2 Personen", "25m gesamt"},
			want:  PersonTime{Person: 4, Time: 25},
		},
		{
			name:  "nothing recognizable",
			lines: []string{"Suppe", "lecker"},
			want:  NumberNotFound,
		},
		{
			name:  "empty result",
			lines: nil,
			want:  NumberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePersonsAndTime(blocksOf(tt.lines...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePersonsAndTime(%v) = %#v, want %#v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"4p", 4},
		{"25m", 25},
		{"25m insgesamt", 25},
		{"ca.30m", 30},
		{"1O0p", 10}, // OCR 將 0 誤讀為 O
		{"Personen", NumberNotFound},
		{"", NumberNotFound},
	}

	for _, tt := range tests {
		if got := ExtractNumber(tt.input); got != tt.want {
			t.Errorf("ExtractNumber(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestCollapseText(t *testing.T) {
	res := Result{Text: "Tomaten\nSuppe\nmit Basilikum"}
	if got := CollapseText(res); got != "Tomaten Suppe mit Basilikum" {
		t.Errorf("CollapseText = %q", got)
	}

	res = Result{Text: "  Einfacher Titel  "}
	if got := CollapseText(res); got != "Einfacher Titel" {
		t.Errorf("CollapseText = %q", got)
	}
}

package ocr

import (
	"strings"

	"recipe-scanner/internal/pkg/common"

	"go.uber.org/zap"
)

// ParsePreparation 將辨識區塊切分為依序編號的備料步驟
//
// 依序走訪區塊並維護目前的步驟編號。開頭為數字的區塊視為
// 新步驟標記，但前提是該數字相對於目前進度是合理的：前兩步
// 允許到目前編號的 4 倍，之後收緊為 2 倍。這是為了避免 OCR
// 把列點符號誤讀成大數字（如 "17."）而跳出一堆空步驟。
//
// 接受為新步驟後，區塊中數字之外的文字（若含字母）成為該步驟
// 的標題候選。未被視為新步驟的區塊依目前步驟的狀態附加：
// 尚無內容時成為標題，已有標題時成為描述，描述已有內容時以
// 換行附加。中間被跳過的步驟以空字串補齊，維持索引連續。
func ParsePreparation(result Result) []common.PreparationStep {
	var steps []common.PreparationStep
	current := -1 // 0-based 目前步驟索引

	for _, block := range result.Blocks {
		text := strings.TrimSpace(block.Text)
		if text == "" {
			continue
		}

		if n := leadingNumber(text); n != NumberNotFound && plausibleStepNumber(n, current) {
			current = n - 1
			steps = growSteps(steps, current)

			rest := stripStepMarker(text)
			if containsLetter(rest) {
				steps[current].Title = capitalize(rest)
			}
			continue
		}

		// 接續文字：附加到目前步驟
		if current < 0 {
			current = 0
		}
		steps = growSteps(steps, current)
		switch {
		case steps[current].Title == "":
			steps[current].Title = capitalize(text)
		case steps[current].Description == "":
			steps[current].Description = text
		default:
			steps[current].Description += "\n" + text
		}
	}

	common.LogDebug("備料步驟解析完成",
		zap.Int("blocks", len(result.Blocks)),
		zap.Int("steps", len(steps)),
	)
	return steps
}

// plausibleStepNumber 判斷候選編號相對目前進度是否可信
// current 為 0-based 索引，-1 表示尚未有任何步驟。
func plausibleStepNumber(n, current int) bool {
	if n < 1 {
		return false
	}
	seen := current + 1
	base := seen
	if base < 1 {
		base = 1
	}
	factor := 2
	if seen < 2 {
		factor = 4
	}
	return n <= base*factor
}

// growSteps 以空步驟補齊到索引 idx，維持索引連續
func growSteps(steps []common.PreparationStep, idx int) []common.PreparationStep {
	for len(steps) <= idx {
		steps = append(steps, common.PreparationStep{})
	}
	return steps
}

// stripStepMarker 移除開頭的步驟編號與其後的標點
func stripStepMarker(text string) string {
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	return strings.TrimLeft(text[i:], ".):- \t")
}

package ocr

import (
	"fmt"
	"regexp"
	"strings"

	"recipe-scanner/internal/pkg/common"

	"go.uber.org/zap"
)

var unitPattern = regexp.MustCompile(`\(([^)]*)\)`)

// ParseIngredientTable 解析食譜卡上的食材表格
//
// 先把所有區塊的非空行攤平成單一序列。第一個以 'p' 結尾的行
// （人數欄標記，如 "2p"）之前的行都是表頭，每行命名一個食材欄，
// 括號內的文字視為單位並自名稱中移除。其餘行為資料列，
// 每列寬度固定為 1 + 食材欄數：第一個 token 為 "Np" 人數標記，
// 之後依表頭順序各一個數量 token。不完整的資料列整列捨棄並
// 記錄警告。
//
// 找不到人數標記時表示辨識結果不是可用的食材表格，回傳
// ErrNoTableHeader 類錯誤，由呼叫端退回手動輸入。
func ParseIngredientTable(result Result) ([]ScannedIngredient, error) {
	var lines []string
	for _, block := range result.Blocks {
		for _, line := range block.Lines {
			text := strings.TrimSpace(line.Text)
			if text == "" {
				continue
			}
			lines = append(lines, text)
		}
	}

	// 表頭區域：第一個人數標記之前的所有行
	headerEnd := -1
	for i, line := range lines {
		if strings.HasSuffix(line, "p") {
			headerEnd = i
			break
		}
	}
	if headerEnd == -1 {
		common.LogError("食材表格缺少人數標記",
			zap.Int("lines", len(lines)),
		)
		return nil, fmt.Errorf("%w: no persons marker in %d lines", common.ErrNoTableHeader, len(lines))
	}

	ingredients := make([]ScannedIngredient, 0, headerEnd)
	for _, header := range lines[:headerEnd] {
		name := header
		unit := ""
		if m := unitPattern.FindStringSubmatch(header); m != nil {
			unit = strings.TrimSpace(m[1])
			name = strings.TrimSpace(unitPattern.ReplaceAllString(header, ""))
		}
		ingredients = append(ingredients, ScannedIngredient{Name: name, Unit: unit})
	}

	// 資料列：人數標記 + 每個食材欄一個數量
	rowWidth := 1 + len(ingredients)
	for start := headerEnd; start < len(lines); start += rowWidth {
		if start+rowWidth > len(lines) {
			common.LogWarn("捨棄不完整的食材資料列",
				zap.Int("row_start", start),
				zap.Int("tokens", len(lines)-start),
				zap.Int("expected", rowWidth),
			)
			break
		}
		row := lines[start : start+rowWidth]
		persons := ExtractNumber(row[0])
		for j := range ingredients {
			ingredients[j].Quantities = append(ingredients[j].Quantities, ServingQuantity{
				Persons:  persons,
				Quantity: row[1+j],
			})
		}
	}

	common.LogDebug("食材表格解析完成",
		zap.Int("columns", len(ingredients)),
	)
	return ingredients, nil
}

package ocr

import (
	"strings"

	"recipe-scanner/internal/pkg/common"

	"go.uber.org/zap"
)

// ParsePersonsAndTime 從辨識結果中找出人數與時間
// 掃描所有區塊的每一行：含 'p' 的行視為人數候選（如 "4p"），
// 含 'm' 的行視為時間候選（如 "25m"）。
//
// 回傳值依辨識到的內容而定：
//   - 人數與時間數量相同且皆非空：依位置配對成 PersonTime，
//     單一結果直接回傳 PersonTime，多筆回傳 []PersonTime。
//   - 數量不同：回傳非空的那一組，單一值為 int，多筆為 []int。
//   - 兩組皆空：記錄錯誤並回傳 NumberNotFound。
func ParsePersonsAndTime(result Result) interface{} {
	var persons []int
	var times []int

	for _, block := range result.Blocks {
		for _, line := range block.Lines {
			text := strings.TrimSpace(line.Text)
			if text == "" {
				continue
			}
			if strings.Contains(text, "p") {
				persons = append(persons, ExtractNumber(text))
			}
			if strings.Contains(text, "m") {
				times = append(times, ExtractNumber(text))
			}
		}
	}

	// 數量相同時依位置配對
	if len(persons) > 0 && len(persons) == len(times) {
		pairs := make([]PersonTime, len(persons))
		for i := range persons {
			pairs[i] = PersonTime{Person: persons[i], Time: times[i]}
		}
		if len(pairs) == 1 {
			return pairs[0]
		}
		return pairs
	}

	// 數量不同：退回只回傳非空的一組
	if len(persons) > 0 {
		if len(persons) == 1 {
			return persons[0]
		}
		return persons
	}
	if len(times) > 0 {
		if len(times) == 1 {
			return times[0]
		}
		return times
	}

	common.LogError("辨識結果中找不到人數或時間",
		zap.Int("blocks", len(result.Blocks)),
	)
	return NumberNotFound
}

// CollapseText 將全文中的換行收斂為單一空格
// 標題與描述欄位直接使用整份辨識文字。
func CollapseText(result Result) string {
	text := strings.ReplaceAll(result.Text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(text)
}

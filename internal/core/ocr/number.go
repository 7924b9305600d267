package ocr

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"recipe-scanner/internal/pkg/common"

	"go.uber.org/zap"
)

// NumberNotFound 無法從文字取出數字時的哨兵值
const NumberNotFound = -1

var nonDigitPattern = regexp.MustCompile(`[^0-9]`)

// ExtractNumber 從一段帶雜訊的辨識文字取出整數
// 先捨棄第一個空格之後的內容，再移除所有非數字字符。
// 完全沒有數字時回傳 NumberNotFound 並記錄錯誤。
func ExtractNumber(text string) int {
	head := text
	if idx := strings.Index(text, " "); idx >= 0 {
		head = text[:idx]
	}
	digits := nonDigitPattern.ReplaceAllString(head, "")
	if digits == "" {
		common.LogError("辨識文字中找不到數字",
			zap.String("text", text),
		)
		return NumberNotFound
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		common.LogError("辨識數字轉換失敗",
			zap.String("text", text),
			zap.Error(err),
		)
		return NumberNotFound
	}
	return n
}

// leadingNumber 取出字串開頭連續數字；無則回傳 NumberNotFound
func leadingNumber(text string) int {
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == 0 {
		return NumberNotFound
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return NumberNotFound
	}
	return n
}

// capitalize 首字母大寫、其餘小寫
func capitalize(text string) string {
	runes := []rune(strings.ToLower(text))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// containsLetter 判斷字串是否含有字母
func containsLetter(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

package search

import (
	"recipe-scanner/internal/pkg/common"
)

// FilterState 篩選狀態：類別 → 已選值列表
//
// 同一類別內的多個值為 OR，不同類別之間為 AND。鍵不存在
// 代表該類別沒有限制；操作保證不會留下空列表的鍵，避免
// 「存在但為空」與「不存在」兩種狀態混淆。
//
// 所有操作都就地修改呼叫端擁有的 map 並回傳同一個 map，
// 方便鏈式使用；呼叫端若要保留舊狀態需自行 Clone。
type FilterState map[common.FilterCategory][]string

// NewFilterState 建立空的篩選狀態
func NewFilterState() FilterState {
	return make(FilterState)
}

// Clone 複製篩選狀態
func (s FilterState) Clone() FilterState {
	clone := make(FilterState, len(s))
	for cat, values := range s {
		clone[cat] = append([]string(nil), values...)
	}
	return clone
}

// Add 將值加入類別，重複加入不會產生重複項
func (s FilterState) Add(category common.FilterCategory, value string) FilterState {
	for _, v := range s[category] {
		if v == value {
			return s
		}
	}
	s[category] = append(s[category], value)
	return s
}

// Remove 自類別移除值；移除不存在的值為 no-op。
// 移除最後一個值時整個鍵一併刪除，回復「沒有限制」的語義。
func (s FilterState) Remove(category common.FilterCategory, value string) FilterState {
	values, ok := s[category]
	if !ok {
		return s
	}
	kept := values[:0]
	for _, v := range values {
		if v != value {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		delete(s, category)
		return s
	}
	s[category] = kept
	return s
}

// EditTitle 設定標題搜尋字串
// 標題搜尋是單值類別，設定時取代而非附加；空字串移除限制。
func (s FilterState) EditTitle(value string) FilterState {
	if value == "" {
		delete(s, common.FilterTitle)
		return s
	}
	s[common.FilterTitle] = []string{value}
	return s
}

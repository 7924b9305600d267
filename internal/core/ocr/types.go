package ocr

// Line 辨識結果中的一行文字
type Line struct {
	Text string `json:"text"`
}

// Block 辨識結果中的一個視覺區塊，包含區塊全文與逐行內容
type Block struct {
	Text  string `json:"text"`
	Lines []Line `json:"lines"`
}

// Result 辨識引擎回傳的完整結果
// Text 為攤平後的全文，Blocks 依照影像上的閱讀順序排列。
type Result struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks"`
}

// TargetField 辨識目標欄位
type TargetField string

const (
	FieldTitle       TargetField = "title"
	FieldDescription TargetField = "description"
	FieldPersons     TargetField = "persons"
	FieldTime        TargetField = "time"
	FieldPreparation TargetField = "preparation"
	FieldIngredients TargetField = "ingredients"
	FieldTags        TargetField = "tags"
	FieldImage       TargetField = "image"
)

// PersonTime 食譜卡上成對出現的人數與時間
type PersonTime struct {
	Person int `json:"person"`
	Time   int `json:"time"`
}

// ServingQuantity 某個人數對應的食材數量
// 食譜卡常以表格列出不同份量的用量（如 2p / 4p 兩欄）。
type ServingQuantity struct {
	Persons  int    `json:"persons"`
	Quantity string `json:"quantity"`
}

// ScannedIngredient 從食材表格辨識出的單一食材
type ScannedIngredient struct {
	Name       string            `json:"name"`
	Unit       string            `json:"unit"`
	Quantities []ServingQuantity `json:"quantities"`
}

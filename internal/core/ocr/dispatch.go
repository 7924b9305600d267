package ocr

import (
	"recipe-scanner/internal/pkg/common"

	"go.uber.org/zap"
)

// StructureField 依目標欄位將辨識結果轉為結構化資料
//
// 欄位與結果形狀的對應：
//   - time、persons → int / []int / PersonTime / []PersonTime
//   - title、description → string（換行收斂為空格）
//   - preparation → []common.PreparationStep
//   - ingredients → []ScannedIngredient（表格無法辨識時回傳錯誤）
//   - tags → 空字串（標籤不經過 OCR）
//   - image → 空字串；這個欄位不應該送進辨識流程，記錄錯誤
//     但絕不憑空編造資料
//
// 未列出的欄位記錄錯誤並回傳空字串，讓未來新增的欄位
// 能被及早發現而不是默默回傳錯的資料。
func StructureField(result Result, field TargetField) (interface{}, error) {
	switch field {
	case FieldTime, FieldPersons:
		return ParsePersonsAndTime(result), nil
	case FieldTitle, FieldDescription:
		return CollapseText(result), nil
	case FieldPreparation:
		return ParsePreparation(result), nil
	case FieldIngredients:
		return ParseIngredientTable(result)
	case FieldTags:
		return "", nil
	case FieldImage:
		common.LogError("圖片欄位不應進入辨識流程",
			zap.String("field", string(field)),
		)
		return "", nil
	default:
		common.LogError("未知的辨識目標欄位",
			zap.String("field", string(field)),
		)
		return "", nil
	}
}

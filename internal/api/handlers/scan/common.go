package scan

import (
	"encoding/base64"
	"strings"
)

// imageType 判斷圖片資料格式（僅用於日誌記錄）
func imageType(image string) string {
	if image == "" {
		return "empty"
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return "url"
	}
	if strings.HasPrefix(image, "data:image/") {
		parts := strings.Split(image, ";base64,")
		if len(parts) == 2 {
			return "base64_data_uri_" + strings.TrimPrefix(parts[0], "data:image/")
		}
		return "invalid_data_uri"
	}
	if _, err := base64.StdEncoding.DecodeString(image); err == nil {
		return "base64"
	}
	return "unknown_format"
}

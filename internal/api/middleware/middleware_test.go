package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recipe-scanner/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouteClass(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/scan", "scan"},
		{"/api/v1/recipes", "recipes"},
		{"/api/v1/recipes/search", "recipes"},
		{"/api/v1/validate/tags", "validate"},
		{"/api/v1/shopping-list/toggle", "shopping-list"},
		{"/health", "health"},
		{"/ready", "health"},
		{"/metrics", "other"},
	}
	for _, tt := range tests {
		if got := routeClass(tt.path); got != tt.want {
			t.Errorf("routeClass(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestBodySizeLimitPerRoute(t *testing.T) {
	r := gin.New()
	r.Use(BodySizeLimit(10, 1000))
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.POST("/api/v1/recipes", handler)
	r.POST("/api/v1/scan", handler)

	body := strings.Repeat("x", 100)

	// 100 bytes 超過 JSON 上限
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/recipes", strings.NewReader(body)))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("recipes: got %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}

	// 掃描路由套用圖片上限，同樣的本體應放行
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/scan", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Errorf("scan: got %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRateLimiterScanCost(t *testing.T) {
	// 容量剛好一次掃描；掃描扣光後連單位請求都不放行
	rl := NewRateLimiter(scanRequestCost, time.Hour)
	if !rl.AllowN(scanRequestCost) {
		t.Fatal("first scan request should be allowed")
	}
	if rl.Allow() {
		t.Error("bucket should be empty after a scan request")
	}
}

func TestRateLimiterRefill(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	if !rl.Allow() || !rl.Allow() {
		t.Fatal("requests within capacity should be allowed")
	}
	if rl.Allow() {
		t.Error("request beyond capacity should be rejected")
	}
}

func TestDeduplicationBlocksRepeatedBody(t *testing.T) {
	cfg := &config.Config{DedupWindow: time.Minute}

	var gotLen int
	r := gin.New()
	r.Use(Deduplication(cfg))
	r.POST("/api/v1/scan", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		gotLen = len(body)
		c.Status(http.StatusOK)
	})

	// 本體大於指紋前綴，驗證預讀後剩餘部分仍完整送達 handler
	body := strings.Repeat("a", fingerprintPrefixBytes+512)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/scan", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("first request: got %d, want %d", w.Code, http.StatusOK)
	}
	if gotLen != len(body) {
		t.Errorf("handler saw %d bytes, want %d", gotLen, len(body))
	}

	// 去重窗口內重送同一張圖
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/scan", strings.NewReader(body)))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("duplicate request: got %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	if !strings.Contains(w.Body.String(), "TOO_MANY_REQUESTS") {
		t.Errorf("duplicate response missing error code: %s", w.Body.String())
	}

	// 不同的圖不受影響
	other := strings.Repeat("b", fingerprintPrefixBytes+512)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/scan", strings.NewReader(other)))
	if w.Code != http.StatusOK {
		t.Errorf("distinct request: got %d, want %d", w.Code, http.StatusOK)
	}
}

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"recipe-scanner/internal/core/ocr"
	"recipe-scanner/internal/infrastructure/config"
	"recipe-scanner/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrCacheMiss 快取未命中
var ErrCacheMiss = fmt.Errorf("cache miss")

// Store 辨識結果快取
// 同一張食譜卡會被不同目標欄位重複辨識，快取鍵為圖片雜湊，
// 避免對引擎重送相同圖片。
type Store interface {
	Get(ctx context.Context, imageData string) (*ocr.Result, error)
	Set(ctx context.Context, imageData string, result *ocr.Result) error
	Close() error
}

// Manager 記憶體快取管理器
type Manager struct {
	config *config.Config
	mu     sync.RWMutex
	store  map[string]entry
	stats  stats
	done   chan struct{}
}

// entry 快取條目
type entry struct {
	result      *ocr.Result
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// stats 快取統計
type stats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

// NewManager 創建記憶體快取管理器
func NewManager(cfg *config.Config) *Manager {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil
	}

	m := &Manager{
		config: cfg,
		store:  make(map[string]entry),
		done:   make(chan struct{}),
	}

	// 啟動清理過期快取的協程
	go m.startCleanup()

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", cfg.Cache.MaxSize),
		zap.Duration("存活時間", cfg.Cache.TTL),
		zap.Duration("清理間隔", cfg.Cache.CleanupInterval),
	)

	return m
}

// Get 獲取快取的辨識結果
func (m *Manager) Get(ctx context.Context, imageData string) (*ocr.Result, error) {
	if m == nil || !m.config.Cache.Enabled {
		return nil, common.ErrCacheDisabled
	}

	key := hashImage(imageData)

	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.store[key]
	if !exists {
		m.stats.misses++
		common.LogCacheMiss("ocr", key)
		return nil, ErrCacheMiss
	}

	if time.Now().After(e.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		common.LogInfo("快取已過期",
			zap.String("鍵", key),
		)
		return nil, ErrCacheMiss
	}

	e.lastAccess = time.Now()
	e.accessCount++
	m.store[key] = e
	m.stats.hits++

	common.LogCacheHit("ocr", key)
	return e.result, nil
}

// Set 寫入辨識結果
func (m *Manager) Set(ctx context.Context, imageData string, result *ocr.Result) error {
	if m == nil || !m.config.Cache.Enabled {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 容量已滿時先清過期項目，再退回 LRU 淘汰
	if len(m.store) >= m.config.Cache.MaxSize {
		evicted := m.cleanup()
		common.LogInfo("快取清理執行",
			zap.Int("清理數量", evicted),
		)
		if len(m.store) >= m.config.Cache.MaxSize {
			m.evictLRU()
		}
		if len(m.store) >= m.config.Cache.MaxSize {
			m.stats.errors++
			common.LogWarn("快取已滿",
				zap.Int("目前容量", len(m.store)),
			)
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	m.store[hashImage(imageData)] = entry{
		result:     result,
		expiresAt:  now.Add(m.config.Cache.TTL),
		createdAt:  now,
		lastAccess: now,
	}
	return nil
}

// hashImage 計算圖片資料的 SHA-256 雜湊
func hashImage(imageData string) string {
	hash := sha256.Sum256([]byte(imageData))
	return hex.EncodeToString(hash[:])
}

// startCleanup 啟動清理過期快取的協程，Close 時結束
func (m *Manager) startCleanup() {
	ticker := time.NewTicker(m.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			m.cleanup()
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

// cleanup 清理過期的快取，呼叫端須持有鎖
func (m *Manager) cleanup() int {
	now := time.Now()
	count := 0

	for key, e := range m.store {
		if now.After(e.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}
	return count
}

// evictLRU 淘汰最少使用的條目，呼叫端須持有鎖
func (m *Manager) evictLRU() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, e := range m.store {
		if oldestKey == "" ||
			e.accessCount < lowestAccessCount ||
			(e.accessCount == lowestAccessCount && e.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = e.lastAccess
			lowestAccessCount = e.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogInfo("快取已淘汰(LRU)",
			zap.String("鍵", oldestKey),
		)
	}
}

// GetStats 獲取快取統計信息
func (m *Manager) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.config.Cache.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"errors":    m.stats.errors,
	}
}

// Close 關閉快取管理器並停止清理協程
// 重複呼叫 Close 是安全的。
func (m *Manager) Close() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
	default:
		close(m.done)
	}

	m.store = make(map[string]entry)
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", m.stats.hits),
		zap.Int64("未命中次數", m.stats.misses),
		zap.Int64("淘汰次數", m.stats.evictions),
	)
	return nil
}

// New 依設定選擇快取後端
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if cfg.Cache.Backend == "redis" {
		return NewService(cfg)
	}
	m := NewManager(cfg)
	if m == nil {
		return nil, fmt.Errorf("failed to initialize cache manager")
	}
	return m, nil
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"recipe-scanner/internal/core/ocr"
	"recipe-scanner/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// Service Redis 快取服務
type Service struct {
	client *redis.Client
	config *config.Config
}

// NewService 創建 Redis 快取服務
func NewService(cfg *config.Config) (*Service, error) {
	if !cfg.Cache.Enabled {
		return &Service{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Service{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取快取的辨識結果
func (s *Service) Get(ctx context.Context, imageData string) (*ocr.Result, error) {
	if !s.config.Cache.Enabled || s.client == nil {
		return nil, fmt.Errorf("cache is disabled")
	}

	key := s.generateKey(imageData)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var result ocr.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache: %w", err)
	}
	return &result, nil
}

// Set 寫入辨識結果
func (s *Service) Set(ctx context.Context, imageData string, result *ocr.Result) error {
	if !s.config.Cache.Enabled || s.client == nil {
		return nil
	}

	key := s.generateKey(imageData)

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.config.Cache.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉 Redis 連線
func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// generateKey 生成快取鍵
func (s *Service) generateKey(imageData string) string {
	return fmt.Sprintf("ocr:result:%s", hashImage(imageData))
}

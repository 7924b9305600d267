package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Engine      EngineConfig    `mapstructure:"engine"`
	Cache       CacheConfig     `mapstructure:"cache"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	Image       ImageConfig     `mapstructure:"image"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// EngineConfig 文字辨識引擎配置
type EngineConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig 緩存配置
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"` // memory 或 redis
	RedisAddr       string        `mapstructure:"redis_addr"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// ImageConfig 圖片配置
type ImageConfig struct {
	MaxSizeBytes int64 `mapstructure:"max_size_bytes"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件
	if err := godotenv.Load(); err != nil {
		return nil, err
	}

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("engine.base_url", "OCR_ENGINE_URL")
	viper.BindEnv("engine.api_key", "OCR_ENGINE_API_KEY")
	viper.BindEnv("engine.enabled", "OCR_ENGINE_ENABLED")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.backend", "CACHE_BACKEND")
	viper.BindEnv("cache.redis_addr", "CACHE_REDIS_ADDR")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 添加調試日誌（logger 尚未初始化，改用 fmt.Println）
	fmt.Println("Loading configuration", "engine_url:", viper.GetString("engine.base_url"), "engine_api_key:", maskAPIKey(viper.GetString("engine.api_key")))

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// maskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-scanner")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 辨識引擎設定
	viper.SetDefault("engine.enabled", false)
	viper.SetDefault("engine.base_url", "http://localhost:9090")
	viper.SetDefault("engine.timeout", "60s")

	// 快取設定
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.redis_addr", "localhost:6379")
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.cleanup_interval", "10m")

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 圖片設定
	viper.SetDefault("image.max_size_bytes", 10*1024*1024) // 10MB

	// 新增 dedup window 預設
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證辨識引擎設定
	if config.Engine.Enabled && config.Engine.BaseURL == "" {
		return fmt.Errorf("engine base url is required")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		if config.Cache.Backend != "memory" && config.Cache.Backend != "redis" {
			return fmt.Errorf("invalid cache backend: %s", config.Cache.Backend)
		}
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	return nil
}

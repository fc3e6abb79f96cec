package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	OpenAI      ProviderConfig  `mapstructure:"openai"`
	OpenRouter  ProviderConfig  `mapstructure:"openrouter"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Storage     StorageConfig   `mapstructure:"storage"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
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

// ProviderConfig 外部模型供應商配置
// APIKey 為空代表未配置，協調器會跳過該供應商
type ProviderConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
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

// StorageConfig 食譜儲存配置
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // memory 或 sqlite
	Path   string `mapstructure:"path"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件，沒有檔案時沿用環境變數
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("openai.model", "OPENAI_MODEL")
	viper.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	viper.BindEnv("openrouter.model", "OPENROUTER_MODEL")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.backend", "CACHE_BACKEND")
	viper.BindEnv("cache.redis_addr", "CACHE_REDIS_ADDR")
	viper.BindEnv("storage.driver", "STORAGE_DRIVER")
	viper.BindEnv("storage.path", "STORAGE_PATH")
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
	fmt.Println("Loading configuration",
		"openai_api_key:", maskAPIKey(viper.GetString("openai.api_key")),
		"openrouter_api_key:", maskAPIKey(viper.GetString("openrouter.api_key")),
		"storage_driver:", viper.GetString("storage.driver"))

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
	viper.SetDefault("app.name", "recipe-suggester")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// OpenAI 設定
	viper.SetDefault("openai.model", "gpt-4o")
	viper.SetDefault("openai.max_tokens", 2048)
	viper.SetDefault("openai.timeout", "60s")

	// OpenRouter 設定
	viper.SetDefault("openrouter.model", "qwen/qwen2.5-vl-72b-instruct:free")
	viper.SetDefault("openrouter.max_tokens", 2048)
	viper.SetDefault("openrouter.timeout", "60s")

	// 快取設定
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.redis_addr", "localhost:6379")
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.cleanup_interval", "10m")

	// 儲存設定
	viper.SetDefault("storage.driver", "memory")
	viper.SetDefault("storage.path", "recipes.db")

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 新增 dedup window 預設
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
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

	// 驗證儲存設定
	switch config.Storage.Driver {
	case "memory":
	case "sqlite":
		if config.Storage.Path == "" {
			return fmt.Errorf("storage path is required for sqlite driver")
		}
	default:
		return fmt.Errorf("invalid storage driver: %s", config.Storage.Driver)
	}

	return nil
}

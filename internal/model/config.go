package model

import "time"

// Config is the full service configuration. Field tags serve both viper
// (mapstructure) and `config show` (yaml).
type Config struct {
	Server       ServerConfig      `yaml:"server" mapstructure:"server"`
	LLM          LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Cache        CacheConfig       `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Models       ModelsConfig      `yaml:"models" mapstructure:"models"`
	Logging      LoggingConfig     `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr         string        `yaml:"addr" mapstructure:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins" mapstructure:"cors_origins"` // "*" allows any origin
	Debug        bool          `yaml:"debug" mapstructure:"debug"`               // gin debug mode
}

// LLMConfig selects and tunes the adjudicator provider. An empty Provider
// disables adjudication; every endpoint still answers from the heuristics.
type LLMConfig struct {
	Provider    string  `yaml:"provider" mapstructure:"provider"`         // groq, openai, anthropic, ollama, or empty
	Model       string  `yaml:"model" mapstructure:"model"`               // text/profile/url model
	VisionModel string  `yaml:"vision_model" mapstructure:"vision_model"` // image forensics model
	APIKey      string  `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL     string  `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout     int     `yaml:"timeout" mapstructure:"timeout"` // seconds per adjudicator call
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float32 `yaml:"temperature" mapstructure:"temperature"`
	HTTPProxy   string  `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy  string  `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
}

// CacheConfig controls the adjudicator verdict cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskDir   string        `yaml:"disk_dir,omitempty" mapstructure:"disk_dir"` // empty = memory only
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// RateLimitConfig bounds calls per adjudicator provider. Providers overrides
// the default for individual providers, keyed by provider name.
type RateLimitConfig struct {
	RequestsPerSecond float64                 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int                     `yaml:"burst_size" mapstructure:"burst_size"`
	Providers         map[string]ProviderRate `yaml:"providers,omitempty" mapstructure:"providers"`
}

// ProviderRate is one provider's override, e.g. a tighter limit for groq's
// free tier.
type ProviderRate struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// ConcurrencyConfig sizes the worker pool used for URL fan-out and batches.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ModelsConfig locates the optional statistical models.
type ModelsConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level" mapstructure:"level"`             // debug, info, warn, error
	Development bool   `yaml:"development" mapstructure:"development"` // console encoder
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":5000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		LLM: LLMConfig{
			Provider:    "",
			Model:       "llama-3.1-8b-instant",
			VisionModel: "llama-3.2-11b-vision-preview",
			Timeout:     10,
			MaxTokens:   300,
			Temperature: 0.2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 5,
			BurstSize:         10,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Models: ModelsConfig{
			Dir: "models",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

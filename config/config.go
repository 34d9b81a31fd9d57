package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultServerAddr    = ":5000"
	DefaultProvider      = "gemini"
	DefaultTargetCount   = 20
	DefaultProxyMaxBytes = 10 << 20
)

var defaultModels = map[string]string{
	"gemini":   "gemini-2.0-flash",
	"openai":   "gpt-4o-mini",
	"deepseek": "deepseek-chat",
}

// Config is assembled from an optional JSON file, an optional .env file and
// the process environment, in increasing order of precedence.
type Config struct {
	ServerAddr string       `json:"server_addr,omitempty" env:"SERVER_ADDR"`
	LogLevel   string       `json:"log_level,omitempty" env:"LOG_LEVEL"`
	LogFormat  string       `json:"log_format,omitempty" env:"LOG_FORMAT"`
	LLM        LLMConfig    `json:"llm"`
	Images     ImagesConfig `json:"images"`
	Proxy      ProxyConfig  `json:"proxy"`
}

// LLMConfig selects the text-generation provider. An empty APIKey is valid and
// routes every request to the canned fallback documents.
type LLMConfig struct {
	Provider       string `json:"provider,omitempty" env:"LLM_PROVIDER"`
	Model          string `json:"model,omitempty" env:"LLM_MODEL"`
	APIKey         string `json:"api_key,omitempty" env:"LLM_API_KEY"`
	BaseURL        string `json:"base_url,omitempty" env:"LLM_BASE_URL"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" env:"LLM_TIMEOUT_SECONDS"`
}

type ImagesConfig struct {
	SerperAPIKey         string `json:"serper_api_key,omitempty" env:"SERPER_API_KEY"`
	Endpoint             string `json:"endpoint,omitempty" env:"IMAGES_ENDPOINT"`
	SearchTimeoutSeconds int    `json:"search_timeout_seconds,omitempty" env:"IMAGES_SEARCH_TIMEOUT_SECONDS"`
	ProbeTimeoutSeconds  int    `json:"probe_timeout_seconds,omitempty" env:"IMAGES_PROBE_TIMEOUT_SECONDS"`
	TargetCount          int    `json:"target_count,omitempty" env:"IMAGES_TARGET_COUNT"`
}

type ProxyConfig struct {
	TimeoutSeconds int   `json:"timeout_seconds,omitempty" env:"PROXY_TIMEOUT_SECONDS"`
	MaxBytes       int64 `json:"max_bytes,omitempty" env:"PROXY_MAX_BYTES"`
}

// Load reads path (when it exists), then .env, then the environment.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.applyDefaults()
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = providerKeyFromEnv(cfg.LLM.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ServerAddr == "" {
		c.ServerAddr = DefaultServerAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}

	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Provider == "" {
		c.LLM.Provider = DefaultProvider
	}
	if c.LLM.Model == "" {
		c.LLM.Model = defaultModels[c.LLM.Provider]
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = 60
	}

	if c.Images.SearchTimeoutSeconds <= 0 {
		c.Images.SearchTimeoutSeconds = 10
	}
	if c.Images.ProbeTimeoutSeconds <= 0 {
		c.Images.ProbeTimeoutSeconds = 5
	}
	if c.Images.TargetCount <= 0 {
		c.Images.TargetCount = DefaultTargetCount
	}

	if c.Proxy.TimeoutSeconds <= 0 {
		c.Proxy.TimeoutSeconds = 10
	}
	if c.Proxy.MaxBytes <= 0 {
		c.Proxy.MaxBytes = DefaultProxyMaxBytes
	}
}

// providerKeyFromEnv honours the provider's conventional variable so that an
// existing GEMINI_API_KEY or OPENAI_API_KEY keeps working.
func providerKeyFromEnv(provider string) string {
	switch provider {
	case "gemini":
		return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	case "openai":
		return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	case "deepseek":
		return strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY"))
	}
	return ""
}

// Validate rejects provider settings that can never work. A missing API key is
// accepted.
func (c Config) Validate() error {
	if _, ok := defaultModels[c.LLM.Provider]; !ok {
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	// DeepSeek exposes an OpenAI-compatible API and needs its endpoint spelled out.
	if c.LLM.Provider == "deepseek" && c.LLM.BaseURL == "" {
		return errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
	}
	return nil
}

func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c ImagesConfig) SearchTimeout() time.Duration {
	return time.Duration(c.SearchTimeoutSeconds) * time.Second
}

func (c ImagesConfig) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSeconds) * time.Second
}

func (c ProxyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

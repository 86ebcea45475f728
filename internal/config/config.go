package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
)

// Config is the server configuration. Credentials may be empty: the
// server still starts and answers with the configuration error.
type Config struct {
	HTTPAddr    string
	LogLevel    slog.Level
	LLMProvider string
	LLMTimeout  time.Duration
	// StrictSchema rejects model answers that miss required fields.
	StrictSchema bool

	GeminiAPIKey  string
	GeminiBaseURL string
	TextModel     string
	ImageModel    string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	DeepSeekAPIKey string
	DeepSeekModel  string

	RateLimitRPS   float64
	RateLimitBurst int
	RedisAddr      string
	BodyLimit      string
}

// Load reads the environment, after merging a .env file when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	c := Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		LLMProvider:    strings.ToLower(envOr("LLM_PROVIDER", ProviderGemini)),
		LLMTimeout:     60 * time.Second,
		GeminiAPIKey:   envOr("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiBaseURL:  envOr("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		TextModel:      envOr("TEXT_MODEL", "gemini-2.5-flash"),
		ImageModel:     envOr("IMAGE_MODEL", "imagen-4.0-generate-001"),
		OpenAIAPIKey:   envOr("OPENAI_API_KEY", os.Getenv("OPENROUTER_API_KEY")),
		OpenAIBaseURL:  envOr("OPENAI_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenAIModel:    envOr("OPENAI_MODEL", "qwen/qwen3-4b:free"),
		DeepSeekAPIKey: os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekModel:  envOr("DEEPSEEK_MODEL", "deepseek-chat"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		BodyLimit:      envOr("BODY_LIMIT", "64K"),
	}

	switch c.LLMProvider {
	case ProviderGemini, ProviderOpenAI, ProviderDeepSeek:
	default:
		return Config{}, fmt.Errorf("invalid LLM_PROVIDER %q", c.LLMProvider)
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLMTimeout = d
	}

	if v := os.Getenv("LLM_STRICT_SCHEMA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_STRICT_SCHEMA %q: %w", v, err)
		}
		c.StrictSchema = b
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		c.RateLimitRPS = rps
	}
	c.RateLimitBurst = int(c.RateLimitRPS*2) + 1
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst < 1 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST %q", v)
		}
		c.RateLimitBurst = burst
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

// MissingCredential names the env var the selected text provider needs,
// or returns "" when it is set.
func (c Config) MissingCredential() string {
	switch c.LLMProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return "OPENAI_API_KEY"
		}
	case ProviderDeepSeek:
		if c.DeepSeekAPIKey == "" {
			return "DEEPSEEK_API_KEY"
		}
	default:
		if c.GeminiAPIKey == "" {
			return "GEMINI_API_KEY"
		}
	}
	return ""
}

// ClientConfig is what the terminal client reads before flags apply.
type ClientConfig struct {
	Server string
	Lang   string
}

func LoadClient() ClientConfig {
	_ = godotenv.Load()
	return ClientConfig{
		Server: envOr("TUVI_SERVER", "http://localhost:8080"),
		Lang:   envOr("TUVI_LANG", "vi"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

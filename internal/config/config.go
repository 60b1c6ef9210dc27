package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the symptom checker server.
type Config struct {
	Server ServerConfig
	AI     AIConfig
}

type ServerConfig struct {
	Port         int
	Env          string
	LogLevel     slog.Level
	MaxBodyBytes int64
	CORSOrigins  []string
}

type AIConfig struct {
	Provider         string
	InferenceTimeout time.Duration
	Groq             OpenAICompatConfig
	OpenAI           OpenAICompatConfig
	Azure            AzureConfig
	Ollama           OpenAICompatConfig
	VLLM             OpenAICompatConfig
}

// OpenAICompatConfig configures any endpoint that speaks the OpenAI
// chat-completions protocol.
type OpenAICompatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type AzureConfig struct {
	APIKey     string
	Endpoint   string
	Deployment string
	APIVersion string
}

var validProviders = map[string]bool{
	"groq":   true,
	"openai": true,
	"azure":  true,
	"ollama": true,
	"vllm":   true,
}

// Load reads configuration from environment variables and returns a validated Config.
// Returns an error with a descriptive message if any required value is missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         envInt("SYMPTOMCHECK_PORT", 8080),
			Env:          envString("SYMPTOMCHECK_ENV", "development"),
			LogLevel:     envLevel("SYMPTOMCHECK_LOG_LEVEL", slog.LevelInfo),
			MaxBodyBytes: int64(envInt("SYMPTOMCHECK_MAX_BODY_BYTES", 64*1024)),
			CORSOrigins:  envList("SYMPTOMCHECK_CORS_ORIGINS", []string{"*"}),
		},
		AI: AIConfig{
			Provider:         strings.ToLower(envString("AI_PROVIDER", "groq")),
			InferenceTimeout: envDurationSecs("AI_INFERENCE_TIMEOUT_SECS", 60*time.Second),
			Groq: OpenAICompatConfig{
				APIKey:  os.Getenv("GROQ_API_KEY"),
				BaseURL: envString("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
				Model:   envString("GROQ_MODEL", "llama-3.1-8b-instant"),
			},
			OpenAI: OpenAICompatConfig{
				APIKey:  os.Getenv("OPENAI_API_KEY"),
				BaseURL: envString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
				Model:   envString("OPENAI_MODEL", "gpt-4o-mini"),
			},
			Azure: AzureConfig{
				APIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
				Endpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
				Deployment: envString("AZURE_OPENAI_DEPLOYMENT", "gpt-4o-mini"),
				APIVersion: envString("AZURE_OPENAI_API_VERSION", "2024-06-01"),
			},
			Ollama: OpenAICompatConfig{
				BaseURL: envString("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
				Model:   envString("OLLAMA_MODEL", "llama3.1"),
			},
			VLLM: OpenAICompatConfig{
				APIKey:  os.Getenv("VLLM_API_KEY"),
				BaseURL: envString("VLLM_BASE_URL", "http://localhost:8000/v1"),
				Model:   envString("VLLM_MODEL", ""),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SYMPTOMCHECK_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("SYMPTOMCHECK_MAX_BODY_BYTES must be > 0, got %d", c.Server.MaxBodyBytes)
	}

	if !validProviders[c.AI.Provider] {
		return fmt.Errorf("AI_PROVIDER must be one of groq, openai, azure, ollama, vllm; got %q", c.AI.Provider)
	}
	if c.AI.InferenceTimeout <= 0 {
		return fmt.Errorf("AI_INFERENCE_TIMEOUT_SECS must be > 0")
	}

	switch c.AI.Provider {
	case "groq":
		if c.AI.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required when AI_PROVIDER is groq")
		}
	case "openai":
		if c.AI.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER is openai")
		}
	case "azure":
		if c.AI.Azure.APIKey == "" {
			return fmt.Errorf("AZURE_OPENAI_API_KEY is required when AI_PROVIDER is azure")
		}
		if !isHTTPURL(c.AI.Azure.Endpoint) {
			return fmt.Errorf("AZURE_OPENAI_ENDPOINT must start with http:// or https://, got %q", c.AI.Azure.Endpoint)
		}
	case "ollama":
		if !isHTTPURL(c.AI.Ollama.BaseURL) {
			return fmt.Errorf("OLLAMA_BASE_URL must start with http:// or https://, got %q", c.AI.Ollama.BaseURL)
		}
	case "vllm":
		if !isHTTPURL(c.AI.VLLM.BaseURL) {
			return fmt.Errorf("VLLM_BASE_URL must start with http:// or https://, got %q", c.AI.VLLM.BaseURL)
		}
		if c.AI.VLLM.Model == "" {
			return fmt.Errorf("VLLM_MODEL is required when AI_PROVIDER is vllm")
		}
	}

	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDurationSecs(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}

func envList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func envLevel(key string, defaultVal slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return defaultVal
	}
}

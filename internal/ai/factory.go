package ai

import (
	"fmt"

	"github.com/kiranshivaraju/symptomchecker/internal/ai/openai"
	"github.com/kiranshivaraju/symptomchecker/internal/config"
	"github.com/kiranshivaraju/symptomchecker/pkg/models"
)

var providerLabels = map[string]string{
	"groq":   "Groq",
	"openai": "OpenAI",
	"azure":  "Azure OpenAI",
	"ollama": "Ollama",
	"vllm":   "vLLM",
}

// ProviderLabel returns the display name used for name in client-facing
// error messages. Unknown names are returned unchanged.
func ProviderLabel(name string) string {
	if l, ok := providerLabels[name]; ok {
		return l
	}
	return name
}

// NewProvider constructs the appropriate completion provider based on config.
// Called once at server startup.
func NewProvider(cfg config.AIConfig) (models.CompletionProvider, error) {
	switch cfg.Provider {
	case "groq":
		return openai.NewProvider("groq", cfg.Groq), nil
	case "openai":
		return openai.NewProvider("openai", cfg.OpenAI), nil
	case "azure":
		return openai.NewAzureProvider(cfg.Azure), nil
	case "ollama":
		return openai.NewProvider("ollama", cfg.Ollama), nil
	case "vllm":
		return openai.NewProvider("vllm", cfg.VLLM), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q: must be one of groq, openai, azure, ollama, vllm", cfg.Provider)
	}
}

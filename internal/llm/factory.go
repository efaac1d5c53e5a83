package llm

import (
	"fmt"
	"os"
	"strings"
)

// apiKeyEnv names the environment variable consulted when no key is configured.
var apiKeyEnv = map[string]string{
	"groq":      "GROQ_API_KEY",
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
}

// NewProvider creates a new LLM provider based on configuration. An empty
// provider name yields ErrNoProvider.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(strings.TrimSpace(config.Provider))
	if provider == "claude" {
		provider = "anthropic"
	}

	if config.APIKey == "" {
		if env, ok := apiKeyEnv[provider]; ok {
			config.APIKey = os.Getenv(env)
		}
	}

	switch provider {
	case "groq":
		return NewGroqProvider(config)

	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, ErrNoProvider

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: groq, openai, anthropic, ollama)", config.Provider)
	}
}

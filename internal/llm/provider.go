package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
)

// ErrNoProvider is returned by NewProvider when no provider is configured.
// Callers treat it as "adjudication disabled", not as a failure.
var ErrNoProvider = errors.New("no LLM provider configured")

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one prompt (optionally with an image) and returns the raw reply
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest is a single-turn prompt.
type CompletionRequest struct {
	System string
	Prompt string

	// Model overrides the provider default
	Model string

	MaxTokens   int
	Temperature float32

	// ImageDataURL is a data: URL attached to the user turn for vision models
	ImageDataURL string
}

// CompletionResponse is the provider's raw text reply.
type CompletionResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "groq", "openai", "anthropic", "ollama", ""
	Provider string

	Model       string
	VisionModel string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama, a Groq-compatible gateway)
	BaseURL string

	// Timeout per adjudicator call
	Timeout int // seconds

	MaxTokens   int
	Temperature float32

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return ConfigFromModel(model.DefaultConfig().LLM)
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:    c.Provider,
		Model:       c.Model,
		VisionModel: c.VisionModel,
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Timeout:     c.Timeout,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		HTTPProxy:   c.HTTPProxy,
		HTTPSProxy:  c.HTTPSProxy,
	}
}

// splitDataURL returns the media type and base64 payload of a data: URL.
func splitDataURL(dataURL string) (mediaType, payload string) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", dataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", rest
	}
	mediaType, _, _ = strings.Cut(meta, ";")
	return mediaType, payload
}

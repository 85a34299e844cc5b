package llm

import (
	"context"
	"fmt"
	"os"
)

// Options configure a provider beyond its type and model.
type Options struct {
	// BaseURL points the openai or anthropic provider at another host.
	BaseURL string
	// Getenv reads credentials; os.Getenv when nil.
	Getenv func(string) string
}

// NewProvider creates a new LLM provider based on the given provider type
// and model. Credentials are read from the environment only.
// Supported provider types: "gemini", "openai", "anthropic".
func NewProvider(ctx context.Context, providerType, model string, opts Options) (Provider, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	switch providerType {
	case "gemini":
		apiKey := getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
		}
		return NewGeminiProvider(ctx, apiKey, model)

	case "openai":
		apiKey := getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIProvider(apiKey, model, opts.BaseURL), nil

	case "anthropic":
		apiKey := getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is not set")
		}
		return NewAnthropicProvider(apiKey, model, opts.BaseURL), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

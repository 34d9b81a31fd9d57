package generator

import (
	"context"
	"fmt"
	"strings"
)

// LLMClient abstracts the text-generation service so it can be swapped or faked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings is the provider configuration handed to concrete clients.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewLLMFromSettings builds the client for s.Provider. It returns a nil client
// and no error when no API key is set; the generator then serves fallback text.
func NewLLMFromSettings(ctx context.Context, s LLMSettings) (LLMClient, error) {
	if strings.TrimSpace(s.APIKey) == "" {
		return nil, nil
	}
	switch s.Provider {
	case "gemini":
		return NewGeminiLLM(ctx, &s)
	case "openai":
		return NewOpenAILLMFromConfig(&s)
	case "deepseek":
		// DeepSeek speaks the OpenAI protocol at its own base URL.
		if s.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return NewOpenAILLMFromConfig(&s)
	default:
		return nil, fmt.Errorf("llm provider %s not supported", s.Provider)
	}
}

package llm

import (
	"context"
	"fmt"

	"github.com/umputun/nldigest/pkg/config"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

// Generator produces text from a prompt. Implementations return *ProviderError for provider failures.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// GenerateOptions controls a single generation call
type GenerateOptions struct {
	JSON bool // ask the provider for a raw JSON reply
}

// NewGenerator makes a model client for the configured provider
func NewGenerator(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	case config.ProviderGemini, "":
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

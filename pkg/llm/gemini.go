package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/umputun/nldigest/pkg/config"
)

// GeminiClient calls Gemini models through the Gen AI SDK
type GeminiClient struct {
	client *genai.Client
	config config.LLMConfig
}

// NewGeminiClient creates a Gemini client bound to the Gemini API backend
func NewGeminiClient(ctx context.Context, cfg config.LLMConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client, config: cfg}, nil
}

// Generate runs a single-turn generation and returns the reply text
func (c *GeminiClient) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(c.config.Temperature)),
		MaxOutputTokens: int32(c.config.MaxTokens), //nolint:gosec // bounded by config
	}
	if opts.JSON {
		genCfg.ResponseMIMEType = "application/json"
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.config.Model, contents, genCfg)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	text := resp.Text()
	if text == "" {
		return "", &ProviderError{Kind: KindOther, Err: errors.New("empty response from model")}
	}
	return text, nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Kind: kindFromStatus(apiErr.Code, apiErr.Status), Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return &ProviderError{Kind: kindFromStatus(apiErrPtr.Code, apiErrPtr.Status), Err: err}
	}
	return &ProviderError{Kind: KindOther, Err: fmt.Errorf("generate content: %w", err)}
}

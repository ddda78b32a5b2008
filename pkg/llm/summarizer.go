package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/umputun/nldigest/pkg/content"
	"github.com/umputun/nldigest/pkg/domain"
)

const maxSummaryContent = 8000

// BuildSummaryPrompt renders the single-newsletter classification prompt
func BuildSummaryPrompt(text string) string {
	if r := []rune(text); len(r) > maxSummaryContent {
		text = string(r[:maxSummaryContent])
	}
	return `Analyze this newsletter and return a JSON object with these fields:
- "category": one of "Tech", "Product", "Business", "Design", "Other"
- "headline": a concise headline, max 10 words
- "summary": 2-3 sentence summary
- "key_points": array of 3-5 bullet point strings
- "reading_time": estimated minutes to read the full original

Return ONLY valid JSON, no markdown fences.

Newsletter content:
` + text
}

// Summarizer produces a structured summary of a single newsletter
type Summarizer struct {
	gen        Generator
	retries    int
	retryDelay time.Duration
}

// NewSummarizer makes a Summarizer with the given retry budget and base delay
func NewSummarizer(gen Generator, retries int, retryDelay time.Duration) *Summarizer {
	return &Summarizer{gen: gen, retries: retries, retryDelay: retryDelay}
}

// Summarize normalizes html, asks the model for a summary and validates the reply
func (s *Summarizer) Summarize(ctx context.Context, html string) (*domain.ArticleSummary, error) {
	prompt := BuildSummaryPrompt(content.ExtractText(html))

	var text string
	err := withRetry(ctx, "summarization", s.retries, s.retryDelay, func() (err error) {
		text, err = s.gen.Generate(ctx, prompt, GenerateOptions{JSON: true})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	var res domain.ArticleSummary
	if err := json.Unmarshal([]byte(stripFences(text)), &res); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	if err := normalizeSummary(&res, html); err != nil {
		return nil, err
	}
	return &res, nil
}

// normalizeSummary rejects unusable replies and fills the fields the model left out
func normalizeSummary(s *domain.ArticleSummary, html string) error {
	s.Headline = strings.TrimSpace(s.Headline)
	s.Summary = strings.TrimSpace(s.Summary)
	if s.Headline == "" && s.Summary == "" {
		return ErrInvalidSummary
	}
	if s.Headline == "" {
		s.Headline = s.Summary
	}
	if s.Summary == "" {
		s.Summary = s.Headline
	}
	if !slices.Contains(domain.Categories, s.Category) {
		s.Category = "Other"
	}
	if s.KeyPoints == nil {
		s.KeyPoints = []string{}
	}
	if s.ReadingTime < 1 {
		s.ReadingTime = content.ReadingTime(html)
	}
	return nil
}

// stripFences drops a markdown code fence some models wrap json into
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/nldigest/pkg/domain"
)

const gazettePromptHeader = `You are the editor of a personal newsletter gazette. Your job is to select the most valuable newsletters for this reader and present them in a structured briefing.`

const gazettePromptTask = `## Your Task

Select 7-10 newsletters and assign them to sections:

1. **HEADLINE** (exactly 1): The single most valuable, relevant, and interesting piece today. Pick content that would make the reader glad they opened the gazette.

2. **WORTH YOUR TIME** (2-3): Strong content the reader should consider reading in full. For each, write a HOOK, one sentence that creates curiosity and makes the reader want to tap. Do NOT write a summary. Write a hook. Good: "Stripe just rewrote their entire billing engine, and the architectural choices explain why most billing systems fail." Bad: "This newsletter discusses Stripe's billing system changes."

3. **IN BRIEF** (4-6): Content worth knowing about but not worth deep reading today. One sentence each, give the reader the gist.

## Rules
- Ensure topic diversity: don't pick 5 newsletters about the same thing
- Be specific in summaries: names, numbers, concrete claims. Never write "this newsletter discusses..."
- Hooks must create curiosity. Not summaries. Not descriptions.
- If a newsletter is clearly outdated or time-sensitive and expired, skip it
- If fewer than 7 candidates are available, adjust section sizes (minimum: 1 headline + 1-2 others)
- Output valid JSON only. No markdown, no commentary.

## Output Format

{
  "headline": {
    "newsletterId": <number>,
    "interestTag": "<matching interest or general topic>",
    "title": "<compelling title, can be rewritten from subject>",
    "summary": "<3 specific sentences with data points and names>",
    "takeaways": ["<takeaway 1>", "<takeaway 2>", "<takeaway 3>"]
  },
  "worthYourTime": [
    {
      "newsletterId": <number>,
      "interestTag": "<topic>",
      "hook": "<one curiosity-creating sentence>",
      "expandedSummary": "<3-4 sentences with key details>",
      "takeaways": ["<takeaway 1>", "<takeaway 2>"]
    }
  ],
  "inBrief": [
    {
      "newsletterId": <number>,
      "interestTag": "<topic>",
      "oneLiner": "<one sentence gist>",
      "expandedSummary": "<2-3 sentences for optional expanded view>"
    }
  ]
}`

// BuildGazettePrompt renders the ranking prompt for the given candidates and reader interests.
// The output depends only on its inputs.
func BuildGazettePrompt(candidates []domain.Candidate, interests []string) string {
	var sb strings.Builder
	sb.WriteString(gazettePromptHeader)
	sb.WriteString("\n\n## Reader Profile\n")
	sb.WriteString("Interests: " + strings.Join(interests, ", ") + "\n\n")
	fmt.Fprintf(&sb, "## Candidate Newsletters (%d available)\n", len(candidates))

	blocks := make([]string, 0, len(candidates))
	for i, c := range candidates {
		blocks = append(blocks, fmt.Sprintf("--- Newsletter %d ---\nID: %d\nFrom: %s\nSubject: %s\nDate: %s\nContent:\n%s\n---",
			i+1, c.ID, c.Sender, c.Subject, c.ReceivedAt, c.Excerpt))
	}
	sb.WriteString(strings.Join(blocks, "\n\n"))
	sb.WriteString("\n\n")
	sb.WriteString(gazettePromptTask)
	return sb.String()
}

// ParseGazetteResponse decodes the model reply. A missing headline or headline id is ErrInvalidGazette,
// missing lists become empty. Nothing else is validated.
func ParseGazetteResponse(text string) (*domain.Gazette, error) {
	var g domain.Gazette
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &g); err != nil {
		return nil, fmt.Errorf("decode gazette: %w", err)
	}
	if g.Headline == nil || g.Headline.NewsletterID == 0 {
		return nil, ErrInvalidGazette
	}
	if g.WorthYourTime == nil {
		g.WorthYourTime = []domain.WorthEntry{}
	}
	if g.InBrief == nil {
		g.InBrief = []domain.BriefEntry{}
	}
	return &g, nil
}

// Ranker asks the model to select and rank candidates into a gazette
type Ranker struct {
	gen        Generator
	retries    int
	retryDelay time.Duration
}

// NewRanker makes a Ranker with the given retry budget and base delay
func NewRanker(gen Generator, retries int, retryDelay time.Duration) *Ranker {
	return &Ranker{gen: gen, retries: retries, retryDelay: retryDelay}
}

// RankGazette builds the prompt, calls the model in JSON mode and parses the reply.
// Transient provider failures are retried, parse errors are not.
func (r *Ranker) RankGazette(ctx context.Context, candidates []domain.Candidate, interests []string) (*domain.Gazette, error) {
	prompt := BuildGazettePrompt(candidates, interests)

	var text string
	err := withRetry(ctx, "gazette ranking", r.retries, r.retryDelay, func() (err error) {
		text, err = r.gen.Generate(ctx, prompt, GenerateOptions{JSON: true})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("rank gazette: %w", err)
	}
	return ParseGazetteResponse(text)
}

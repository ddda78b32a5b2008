package llm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nldigest/pkg/domain"
	"github.com/umputun/nldigest/pkg/llm"
	"github.com/umputun/nldigest/pkg/llm/mocks"
)

const validGazette = `{"headline":{"newsletterId":1,"interestTag":"AI","title":"T","summary":"S","takeaways":["a"]},
"worthYourTime":[{"newsletterId":2,"interestTag":"AI","hook":"H","expandedSummary":"E","takeaways":["b"]}],
"inBrief":[{"newsletterId":3,"interestTag":"AI","oneLiner":"O","expandedSummary":"X"}]}`

func TestRanker_RankGazette(t *testing.T) {
	gen := &mocks.GeneratorMock{
		GenerateFunc: func(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
			return validGazette, nil
		},
	}
	r := llm.NewRanker(gen, 2, time.Millisecond)

	cands := []domain.Candidate{{ID: 1, Sender: "a", Subject: "s1"}, {ID: 2, Sender: "b", Subject: "s2"}, {ID: 3, Sender: "c", Subject: "s3"}}
	g, err := r.RankGazette(context.Background(), cands, []string{"AI"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), g.Headline.NewsletterID)
	assert.Len(t, g.WorthYourTime, 1)
	assert.Len(t, g.InBrief, 1)

	require.Len(t, gen.GenerateCalls(), 1)
	assert.True(t, gen.GenerateCalls()[0].Opts.JSON)
	assert.Equal(t, llm.BuildGazettePrompt(cands, []string{"AI"}), gen.GenerateCalls()[0].Prompt)
}

func TestRanker_RetriesRateLimit(t *testing.T) {
	calls := 0
	gen := &mocks.GeneratorMock{
		GenerateFunc: func(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
			calls++
			if calls <= 2 {
				return "", &llm.ProviderError{Kind: llm.KindRateLimited, Err: errors.New("429 RESOURCE_EXHAUSTED")}
			}
			return validGazette, nil
		},
	}
	r := llm.NewRanker(gen, 2, time.Millisecond)

	g, err := r.RankGazette(context.Background(), nil, []string{"General"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), g.Headline.NewsletterID)
	assert.Len(t, gen.GenerateCalls(), 3)
}

func TestRanker_Errors(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		err       error
		wantCalls int
		check     func(t *testing.T, err error)
	}{
		{
			name:      "retries exhausted",
			err:       &llm.ProviderError{Kind: llm.KindUnavailable, Err: errors.New("503")},
			wantCalls: 3,
			check:     func(t *testing.T, err error) { assert.True(t, llm.IsTransient(err)) },
		},
		{
			name:      "non transient fails immediately",
			err:       &llm.ProviderError{Kind: llm.KindOther, Err: errors.New("401 unauthorized")},
			wantCalls: 1,
			check:     func(t *testing.T, err error) { assert.False(t, llm.IsTransient(err)) },
		},
		{
			name:      "invalid gazette is not retried",
			reply:     `{"inBrief":[]}`,
			wantCalls: 1,
			check:     func(t *testing.T, err error) { assert.ErrorIs(t, err, llm.ErrInvalidGazette) },
		},
		{
			name:      "malformed json is not retried",
			reply:     `{"headline":`,
			wantCalls: 1,
			check:     func(t *testing.T, err error) { assert.Contains(t, err.Error(), "decode gazette") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mocks.GeneratorMock{
				GenerateFunc: func(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
					return tt.reply, tt.err
				},
			}
			r := llm.NewRanker(gen, 2, time.Millisecond)
			g, err := r.RankGazette(context.Background(), nil, []string{"General"})
			require.Error(t, err)
			assert.Nil(t, g)
			assert.Len(t, gen.GenerateCalls(), tt.wantCalls)
			tt.check(t, err)
		})
	}
}

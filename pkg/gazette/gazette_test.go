package gazette

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nldigest/pkg/domain"
	"github.com/umputun/nldigest/pkg/gazette/mocks"
)

var testNow = time.Date(2025, 3, 3, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

type testDeps struct {
	newsletters *mocks.NewsletterStoreMock
	editions    *mocks.EditionStoreMock
	prefs       *mocks.PreferenceStoreMock
	mail        *mocks.MailSourceMock
	ranker      *mocks.RankerMock
}

// newTestGenerator makes a generator over an in-memory set of eligible newsletters
func newTestGenerator(t *testing.T, eligible []domain.Newsletter) (*Generator, *testDeps) {
	t.Helper()
	d := &testDeps{
		newsletters: &mocks.NewsletterStoreMock{
			UpsertFunc: func(context.Context, *domain.Newsletter) (bool, error) { return true, nil },
			UnprocessedFunc: func(context.Context, int) ([]domain.Newsletter, error) {
				return eligible, nil
			},
		},
		editions: &mocks.EditionStoreMock{
			GetByDateFunc: func(context.Context, string) (*domain.Edition, error) {
				return nil, fmt.Errorf("edition: %w", domain.ErrNotFound)
			},
			CreateWithArticlesFunc: func(_ context.Context, e *domain.Edition, _ []domain.EditionArticle) error {
				e.ID = 42
				return nil
			},
		},
		prefs: &mocks.PreferenceStoreMock{
			LabelsFunc:    func(context.Context) ([]string, error) { return []string{"News"}, nil },
			InterestsFunc: func(context.Context) ([]string, error) { return []string{"AI", "Go"}, nil },
		},
		mail: &mocks.MailSourceMock{
			FetchFunc: func(context.Context, string, int) ([]domain.Newsletter, error) { return nil, nil },
		},
		ranker: &mocks.RankerMock{},
	}
	g := NewGenerator(Params{
		Newsletters: d.newsletters,
		Editions:    d.editions,
		Preferences: d.prefs,
		Mail:        d.mail,
		Ranker:      d.ranker,
		Now:         func() time.Time { return testNow },
	})
	return g, d
}

func sampleNewsletters(n int) []domain.Newsletter {
	res := make([]domain.Newsletter, n)
	for i := range res {
		res[i] = domain.Newsletter{
			ID:         int64(i + 1),
			ExternalID: fmt.Sprintf("m%d", i+1),
			Sender:     fmt.Sprintf("sender%d", i+1),
			Subject:    fmt.Sprintf("subject %d", i+1),
			ReceivedAt: testNow.Add(-time.Duration(i) * time.Hour),
			RawHTML:    "<html><body><p>some words here</p></body></html>",
		}
	}
	return res
}

func TestGenerator_Generate(t *testing.T) {
	g, d := newTestGenerator(t, sampleNewsletters(5))
	d.ranker.RankGazetteFunc = func(_ context.Context, cands []domain.Candidate, interests []string) (*domain.Gazette, error) {
		assert.Len(t, cands, 5)
		assert.Equal(t, []string{"AI", "Go"}, interests)
		return &domain.Gazette{
			Headline: &domain.HeadlineEntry{NewsletterID: 2, InterestTag: "AI", Title: "Big news", Summary: "summary",
				Takeaways: []string{"one", "two"}},
			WorthYourTime: []domain.WorthEntry{
				{NewsletterID: 1, InterestTag: "Go", Hook: "hook 1", ExpandedSummary: "longer 1", Takeaways: []string{"t"}},
				{NewsletterID: 3, InterestTag: "Go", Hook: "hook 3"},
			},
			InBrief: []domain.BriefEntry{{NewsletterID: 5, InterestTag: "AI", OneLiner: "brief 5", ExpandedSummary: "more 5"}},
		}, nil
	}

	res, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Result{EditionID: 42, Status: StatusReady}, res)

	require.Len(t, d.editions.CreateWithArticlesCalls(), 1)
	call := d.editions.CreateWithArticlesCalls()[0]
	assert.Equal(t, "2025-03-04", call.Edition.EditionDate, "edition date is UTC")
	assert.Equal(t, testNow, call.Edition.GeneratedAt)

	arts := call.Articles
	require.Len(t, arts, 4)

	assert.Equal(t, domain.SectionHeadline, arts[0].Section)
	assert.Equal(t, int64(2), arts[0].NewsletterID)
	assert.Equal(t, "Big news", arts[0].Headline)
	assert.Equal(t, "summary", arts[0].Summary)
	assert.Equal(t, "AI", arts[0].Category)
	assert.Equal(t, []string{"one", "two"}, arts[0].KeyPoints)
	assert.Nil(t, arts[0].ExpandedSummary)
	assert.Equal(t, 1, arts[0].ReadingTime)

	assert.Equal(t, domain.SectionWorthYourTime, arts[1].Section)
	assert.Equal(t, 0, arts[1].Position)
	assert.Equal(t, "hook 1", arts[1].Headline)
	assert.Equal(t, "hook 1", arts[1].Summary)
	require.NotNil(t, arts[1].ExpandedSummary)
	assert.Equal(t, "longer 1", *arts[1].ExpandedSummary)
	assert.Equal(t, 1, arts[2].Position)
	assert.Equal(t, []string{}, arts[2].KeyPoints)
	assert.Nil(t, arts[2].ExpandedSummary)

	assert.Equal(t, domain.SectionInBrief, arts[3].Section)
	assert.Equal(t, "brief 5", arts[3].Headline)
	assert.Equal(t, []string{}, arts[3].KeyPoints)
	require.NotNil(t, arts[3].ExpandedSummary)
	assert.Equal(t, "more 5", *arts[3].ExpandedSummary)

	require.Len(t, d.editions.GetByDateCalls(), 1)
	assert.Equal(t, "2025-03-04", d.editions.GetByDateCalls()[0].Date)
}

func TestGenerator_Generate_ExistingEdition(t *testing.T) {
	g, d := newTestGenerator(t, sampleNewsletters(3))
	d.editions.GetByDateFunc = func(context.Context, string) (*domain.Edition, error) {
		return &domain.Edition{ID: 7, EditionDate: "2025-03-04"}, nil
	}

	res, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Result{EditionID: 7, Status: StatusReady}, res)
	assert.Empty(t, d.ranker.RankGazetteCalls())
	assert.Empty(t, d.mail.FetchCalls())
	assert.Empty(t, d.editions.CreateWithArticlesCalls())
}

func TestGenerator_Generate_NothingToProcess(t *testing.T) {
	g, d := newTestGenerator(t, nil)
	_, err := g.Generate(context.Background())
	require.ErrorIs(t, err, ErrNothingToProcess)
	assert.Empty(t, d.ranker.RankGazetteCalls())
	assert.Empty(t, d.editions.CreateWithArticlesCalls())
}

func TestGenerator_Generate_PoolLimit(t *testing.T) {
	g, d := newTestGenerator(t, sampleNewsletters(45))
	d.ranker.RankGazetteFunc = func(_ context.Context, cands []domain.Candidate, _ []string) (*domain.Gazette, error) {
		assert.Len(t, cands, 30)
		assert.Equal(t, int64(1), cands[0].ID)
		// 31 is outside the pool
		return &domain.Gazette{
			Headline:      &domain.HeadlineEntry{NewsletterID: 30, Title: "t"},
			WorthYourTime: []domain.WorthEntry{{NewsletterID: 31, Hook: "outside"}, {NewsletterID: 30, Hook: "dup"}},
			InBrief:       []domain.BriefEntry{{NewsletterID: 999, OneLiner: "unknown"}, {NewsletterID: 4, OneLiner: "ok"}},
		}, nil
	}

	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	arts := d.editions.CreateWithArticlesCalls()[0].Articles
	require.Len(t, arts, 2)
	assert.Equal(t, int64(30), arts[0].NewsletterID)
	assert.Equal(t, int64(4), arts[1].NewsletterID)
	assert.Equal(t, 1, arts[1].Position)
}

func TestGenerator_Generate_UnknownHeadline(t *testing.T) {
	g, d := newTestGenerator(t, sampleNewsletters(2))
	d.ranker.RankGazetteFunc = func(context.Context, []domain.Candidate, []string) (*domain.Gazette, error) {
		return &domain.Gazette{Headline: &domain.HeadlineEntry{NewsletterID: 77}}, nil
	}
	_, err := g.Generate(context.Background())
	require.ErrorIs(t, err, ErrUnknownHeadline)
	assert.Empty(t, d.editions.CreateWithArticlesCalls())
}

func TestGenerator_Generate_RankerError(t *testing.T) {
	g, d := newTestGenerator(t, sampleNewsletters(2))
	d.ranker.RankGazetteFunc = func(context.Context, []domain.Candidate, []string) (*domain.Gazette, error) {
		return nil, errors.New("model failed")
	}
	_, err := g.Generate(context.Background())
	require.EqualError(t, err, "model failed")
	assert.Empty(t, d.editions.CreateWithArticlesCalls())
}

func TestGenerator_Generate_DefaultInterest(t *testing.T) {
	g, d := newTestGenerator(t, sampleNewsletters(1))
	d.prefs.InterestsFunc = func(context.Context) ([]string, error) { return nil, nil }
	d.ranker.RankGazetteFunc = func(_ context.Context, _ []domain.Candidate, interests []string) (*domain.Gazette, error) {
		assert.Equal(t, []string{"General"}, interests)
		return &domain.Gazette{Headline: &domain.HeadlineEntry{NewsletterID: 1}}, nil
	}
	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, d.ranker.RankGazetteCalls(), 1)
}

func TestGenerator_Generate_LostRace(t *testing.T) {
	g, d := newTestGenerator(t, sampleNewsletters(1))
	d.ranker.RankGazetteFunc = func(context.Context, []domain.Candidate, []string) (*domain.Gazette, error) {
		return &domain.Gazette{Headline: &domain.HeadlineEntry{NewsletterID: 1}}, nil
	}
	calls := 0
	d.editions.GetByDateFunc = func(context.Context, string) (*domain.Edition, error) {
		calls++
		if calls == 1 {
			return nil, domain.ErrNotFound
		}
		return &domain.Edition{ID: 9}, nil
	}
	d.editions.CreateWithArticlesFunc = func(context.Context, *domain.Edition, []domain.EditionArticle) error {
		return fmt.Errorf("create: %w", domain.ErrEditionExists)
	}

	res, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.EditionID)
}

func TestGenerator_Generate_StoreError(t *testing.T) {
	g, d := newTestGenerator(t, sampleNewsletters(1))
	d.ranker.RankGazetteFunc = func(context.Context, []domain.Candidate, []string) (*domain.Gazette, error) {
		return &domain.Gazette{Headline: &domain.HeadlineEntry{NewsletterID: 1}}, nil
	}
	d.editions.CreateWithArticlesFunc = func(context.Context, *domain.Edition, []domain.EditionArticle) error {
		return errors.New("disk full")
	}
	_, err := g.Generate(context.Background())
	require.EqualError(t, err, "store edition: disk full")
}

func TestGenerator_Generate_Serialized(t *testing.T) {
	g, d := newTestGenerator(t, sampleNewsletters(2))
	var mu sync.Mutex
	active, maxActive := 0, 0
	d.ranker.RankGazetteFunc = func(context.Context, []domain.Candidate, []string) (*domain.Gazette, error) {
		mu.Lock()
		active++
		maxActive = max(maxActive, active)
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		mu.Lock()
		active--
		mu.Unlock()
		return &domain.Gazette{Headline: &domain.HeadlineEntry{NewsletterID: 1}}, nil
	}

	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := g.Generate(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxActive)
}

func TestGenerator_Ingest(t *testing.T) {
	g, d := newTestGenerator(t, nil)
	d.prefs.LabelsFunc = func(context.Context) ([]string, error) { return []string{"News", "Tech"}, nil }
	d.mail.FetchFunc = func(_ context.Context, label string, maxResults int) ([]domain.Newsletter, error) {
		assert.Equal(t, 50, maxResults)
		if label == "News" {
			return []domain.Newsletter{{ExternalID: "a"}, {ExternalID: "b"}}, nil
		}
		return []domain.Newsletter{{ExternalID: "b"}, {ExternalID: "c"}}, nil
	}
	d.newsletters.UpsertFunc = func(_ context.Context, nl *domain.Newsletter) (bool, error) {
		return nl.ExternalID != "a", nil // "a" was stored before
	}

	created, err := g.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	require.Len(t, d.newsletters.UpsertCalls(), 3)
	ids := []string{}
	for _, c := range d.newsletters.UpsertCalls() {
		ids = append(ids, c.Nl.ExternalID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestGenerator_Ingest_DefaultLabel(t *testing.T) {
	g, d := newTestGenerator(t, nil)
	d.prefs.LabelsFunc = func(context.Context) ([]string, error) { return []string{}, nil }
	_, err := g.Ingest(context.Background())
	require.NoError(t, err)
	require.Len(t, d.mail.FetchCalls(), 1)
	assert.Equal(t, "Newsletters", d.mail.FetchCalls()[0].Label)
}

func TestGenerator_Ingest_FetchError(t *testing.T) {
	errAuth := errors.New("not authenticated")
	g, d := newTestGenerator(t, nil)
	d.mail.FetchFunc = func(context.Context, string, int) ([]domain.Newsletter, error) { return nil, errAuth }

	_, err := g.Generate(context.Background())
	require.ErrorIs(t, err, errAuth)
	assert.Empty(t, d.newsletters.UpsertCalls())
}

func TestGenerator_PrepareStream(t *testing.T) {
	g, d := newTestGenerator(t, nil)
	d.newsletters.KeptUnprocessedIDsFunc = func(context.Context) ([]int64, error) { return []int64{4, 2, 9}, nil }
	d.editions.EnsureFunc = func(_ context.Context, date string, at time.Time) (*domain.Edition, error) {
		assert.Equal(t, "2025-03-04", date)
		assert.Equal(t, testNow, at)
		return &domain.Edition{ID: 3, EditionDate: date}, nil
	}

	p, err := g.PrepareStream(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Prepared{EditionID: 3, NewsletterIDs: []int64{4, 2, 9}}, p)

	t.Run("nothing kept", func(t *testing.T) {
		d.newsletters.KeptUnprocessedIDsFunc = func(context.Context) ([]int64, error) { return nil, nil }
		_, err := g.PrepareStream(context.Background())
		require.ErrorIs(t, err, ErrNothingToProcess)
	})
}

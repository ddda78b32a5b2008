package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nldigest/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func addNewsletter(t *testing.T, repos *Repositories, extID string, received time.Time) domain.Newsletter {
	t.Helper()
	nl := domain.Newsletter{
		ExternalID: extID,
		Sender:     "Sender " + extID,
		Subject:    "Subject " + extID,
		Snippet:    "snippet",
		ReceivedAt: received,
		RawHTML:    "<p>body " + extID + "</p>",
	}
	created, err := repos.Newsletter.Upsert(context.Background(), &nl)
	require.NoError(t, err)
	require.True(t, created)
	return nl
}

func TestRepositories_Ping(t *testing.T) {
	repos := setupTestRepos(t)
	require.NoError(t, repos.Ping(context.Background()))
}

func TestNewsletterRepository_Upsert(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	received := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	nl := addNewsletter(t, repos, "msg-1", received)
	assert.NotZero(t, nl.ID)

	// same external id keeps the first row
	dup := domain.Newsletter{ExternalID: "msg-1", Sender: "other", Subject: "changed", ReceivedAt: received}
	created, err := repos.Newsletter.Upsert(ctx, &dup)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, nl.ID, dup.ID)

	got, err := repos.Newsletter.Get(ctx, nl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Subject msg-1", got.Subject)
	assert.Equal(t, "<p>body msg-1</p>", got.RawHTML)
	assert.True(t, received.Equal(got.ReceivedAt))

	count, err := repos.Newsletter.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewsletterRepository_GetNotFound(t *testing.T) {
	repos := setupTestRepos(t)
	_, err := repos.Newsletter.Get(context.Background(), 12345)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewsletterRepository_Eligibility(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	n1 := addNewsletter(t, repos, "a", base.Add(1*time.Hour))
	n2 := addNewsletter(t, repos, "b", base.Add(3*time.Hour))
	n3 := addNewsletter(t, repos, "c", base.Add(2*time.Hour))

	unprocessed, err := repos.Newsletter.Unprocessed(ctx, 0)
	require.NoError(t, err)
	require.Len(t, unprocessed, 3)
	assert.Equal(t, []int64{n2.ID, n3.ID, n1.ID}, []int64{unprocessed[0].ID, unprocessed[1].ID, unprocessed[2].ID})

	limited, err := repos.Newsletter.Unprocessed(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	// put n2 into an edition, it is excluded from now on
	ed := &domain.Edition{EditionDate: "2025-03-01", GeneratedAt: base}
	require.NoError(t, repos.Edition.CreateWithArticles(ctx, ed, []domain.EditionArticle{
		{NewsletterID: n2.ID, Section: domain.SectionHeadline, Headline: "h", Summary: "s"},
	}))

	unprocessed, err = repos.Newsletter.Unprocessed(ctx, 0)
	require.NoError(t, err)
	require.Len(t, unprocessed, 2)
	assert.Equal(t, n3.ID, unprocessed[0].ID)
	assert.Equal(t, n1.ID, unprocessed[1].ID)
}

func TestNewsletterRepository_TriageQueries(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	n1 := addNewsletter(t, repos, "a", base.Add(1*time.Hour))
	n2 := addNewsletter(t, repos, "b", base.Add(2*time.Hour))
	n3 := addNewsletter(t, repos, "c", base.Add(3*time.Hour))

	require.NoError(t, repos.Triage.Record(ctx, domain.TriageDecision{NewsletterID: n1.ID, Decision: domain.DecisionKept, TriagedAt: base}))
	require.NoError(t, repos.Triage.Record(ctx, domain.TriageDecision{NewsletterID: n2.ID, Decision: domain.DecisionSkipped, TriagedAt: base}))

	untriaged, err := repos.Newsletter.Untriaged(ctx, 0)
	require.NoError(t, err)
	require.Len(t, untriaged, 1)
	assert.Equal(t, n3.ID, untriaged[0].ID)

	kept, err := repos.Newsletter.KeptUnprocessedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{n1.ID}, kept)

	// change of mind replaces the earlier decision
	require.NoError(t, repos.Triage.Record(ctx, domain.TriageDecision{NewsletterID: n2.ID, Decision: domain.DecisionKept, TriagedAt: base.Add(time.Minute)}))
	kept, err = repos.Newsletter.KeptUnprocessedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{n1.ID, n2.ID}, kept)

	st, err := repos.Triage.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, TriageStats{Triaged: 2, Kept: 2}, st)

	// processed kept newsletters are not returned
	_, err = repos.Edition.Ensure(ctx, "2025-03-01", base)
	require.NoError(t, err)
	ed, err := repos.Edition.GetByDate(ctx, "2025-03-01")
	require.NoError(t, err)
	require.NoError(t, repos.Edition.AddArticle(ctx, &domain.EditionArticle{EditionID: ed.ID, NewsletterID: n1.ID, Headline: "h", Summary: "s"}))
	kept, err = repos.Newsletter.KeptUnprocessedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{n2.ID}, kept)
}

func TestTriageRepository_InvalidDecision(t *testing.T) {
	repos := setupTestRepos(t)
	nl := addNewsletter(t, repos, "a", time.Now())
	err := repos.Triage.Record(context.Background(), domain.TriageDecision{NewsletterID: nl.ID, Decision: "maybe"})
	require.Error(t, err)
}

func TestEditionRepository_CreateWithArticles(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 2, 7, 30, 0, 0, time.UTC)

	n1 := addNewsletter(t, repos, "a", now)
	n2 := addNewsletter(t, repos, "b", now)
	n3 := addNewsletter(t, repos, "c", now)

	expanded := "longer text"
	ed := &domain.Edition{EditionDate: domain.EditionDate(now), GeneratedAt: now}
	articles := []domain.EditionArticle{
		{NewsletterID: n1.ID, Section: domain.SectionHeadline, Position: 0, Category: "AI", Headline: "H1", Summary: "S1", KeyPoints: []string{"k1", "k2"}, ReadingTime: 4},
		{NewsletterID: n3.ID, Section: domain.SectionInBrief, Position: 0, Category: "Biz", Headline: "B1", Summary: "B1", ReadingTime: 1},
		{NewsletterID: n2.ID, Section: domain.SectionWorthYourTime, Position: 0, Category: "Dev", Headline: "W1", Summary: "W1", ExpandedSummary: &expanded, ReadingTime: 2},
	}
	require.NoError(t, repos.Edition.CreateWithArticles(ctx, ed, articles))
	assert.NotZero(t, ed.ID)

	got, err := repos.Edition.Get(ctx, ed.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", got.EditionDate)

	views, err := repos.Edition.Articles(ctx, ed.ID)
	require.NoError(t, err)
	require.Len(t, views, 3)

	grouped := domain.GroupBySection(views)
	require.Len(t, grouped[domain.SectionHeadline], 1)
	head := grouped[domain.SectionHeadline][0]
	assert.Equal(t, "H1", head.Headline)
	assert.Equal(t, []string{"k1", "k2"}, head.KeyPoints)
	assert.Nil(t, head.ExpandedSummary)
	assert.Equal(t, "Sender a", head.Sender)
	assert.Equal(t, "<p>body a</p>", head.RawHTML)

	worth := grouped[domain.SectionWorthYourTime][0]
	require.NotNil(t, worth.ExpandedSummary)
	assert.Equal(t, "longer text", *worth.ExpandedSummary)

	brief := grouped[domain.SectionInBrief][0]
	assert.Equal(t, []string{}, brief.KeyPoints)
}

func TestEditionRepository_SameDayConflict(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 2, 7, 30, 0, 0, time.UTC)
	nl := addNewsletter(t, repos, "a", now)

	first := &domain.Edition{EditionDate: "2025-03-02", GeneratedAt: now}
	require.NoError(t, repos.Edition.CreateWithArticles(ctx, first, nil))

	second := &domain.Edition{EditionDate: "2025-03-02", GeneratedAt: now.Add(time.Hour)}
	err := repos.Edition.CreateWithArticles(ctx, second, []domain.EditionArticle{{NewsletterID: nl.ID, Headline: "h", Summary: "s"}})
	require.ErrorIs(t, err, domain.ErrEditionExists)
	assert.Zero(t, second.ID)

	// nothing from the failed run is stored
	unprocessed, err := repos.Newsletter.Unprocessed(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, unprocessed, 1)

	count, err := repos.Edition.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEditionRepository_RollbackOnArticleFailure(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Now()
	nl := addNewsletter(t, repos, "a", now)

	ed := &domain.Edition{EditionDate: domain.EditionDate(now), GeneratedAt: now}
	err := repos.Edition.CreateWithArticles(ctx, ed, []domain.EditionArticle{
		{NewsletterID: nl.ID, Section: domain.SectionHeadline, Headline: "h", Summary: "s"},
		{NewsletterID: 999999, Section: domain.SectionInBrief, Headline: "x", Summary: "y"}, // violates foreign key
	})
	require.Error(t, err)

	_, err = repos.Edition.GetByDate(ctx, domain.EditionDate(now))
	require.ErrorIs(t, err, domain.ErrNotFound)
	unprocessed, err := repos.Newsletter.Unprocessed(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, unprocessed, 1)
}

func TestEditionRepository_EnsureAndList(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)

	_, err := repos.Edition.Latest(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)

	for i := 0; i < 3; i++ {
		day := base.AddDate(0, 0, i)
		ed, err := repos.Edition.Ensure(ctx, domain.EditionDate(day), day)
		require.NoError(t, err)
		again, err := repos.Edition.Ensure(ctx, domain.EditionDate(day), day.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, ed.ID, again.ID, "ensure is idempotent for %s", domain.EditionDate(day))
	}

	list, err := repos.Edition.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2025-03-03", list[0].EditionDate)
	assert.Equal(t, "2025-03-01", list[2].EditionDate)

	latest, err := repos.Edition.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03", latest.EditionDate)

	_, err = repos.Edition.Get(ctx, 424242)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditionRepository_AddArticleConcurrent(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Now()
	ed, err := repos.Edition.Ensure(ctx, domain.EditionDate(now), now)
	require.NoError(t, err)

	ids := make([]int64, 6)
	for i := range ids {
		ids[i] = addNewsletter(t, repos, fmt.Sprintf("n%d", i), now).ID
	}

	errs := make(chan error, len(ids))
	for i, id := range ids {
		go func(pos int, id int64) {
			errs <- repos.Edition.AddArticle(ctx, &domain.EditionArticle{EditionID: ed.ID, NewsletterID: id, Position: pos, Headline: "h", Summary: "s"})
		}(i, id)
	}
	for range ids {
		require.NoError(t, <-errs)
	}

	views, err := repos.Edition.Articles(ctx, ed.ID)
	require.NoError(t, err)
	assert.Len(t, views, 6)
	for _, v := range views {
		assert.Equal(t, domain.SectionInBrief, v.Section)
	}
}

func TestEditionRepository_ArticleUniquePerEdition(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Now()
	nl := addNewsletter(t, repos, "a", now)

	processed, err := repos.Newsletter.IsProcessed(ctx, nl.ID)
	require.NoError(t, err)
	assert.False(t, processed)

	ed, err := repos.Edition.Ensure(ctx, domain.EditionDate(now), now)
	require.NoError(t, err)
	require.NoError(t, repos.Edition.AddArticle(ctx, &domain.EditionArticle{EditionID: ed.ID, NewsletterID: nl.ID, Headline: "h", Summary: "s"}))

	processed, err = repos.Newsletter.IsProcessed(ctx, nl.ID)
	require.NoError(t, err)
	assert.True(t, processed)

	err = repos.Edition.AddArticle(ctx, &domain.EditionArticle{EditionID: ed.ID, NewsletterID: nl.ID, Headline: "h2", Summary: "s2"})
	require.ErrorIs(t, err, domain.ErrArticleExists)

	views, err := repos.Edition.Articles(ctx, ed.ID)
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestEditionRepository_NextPosition(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 2, 7, 30, 0, 0, time.UTC)
	n1 := addNewsletter(t, repos, "a", now)
	n2 := addNewsletter(t, repos, "b", now)
	n3 := addNewsletter(t, repos, "c", now)

	ed := &domain.Edition{EditionDate: domain.EditionDate(now), GeneratedAt: now}
	require.NoError(t, repos.Edition.CreateWithArticles(ctx, ed, []domain.EditionArticle{
		{NewsletterID: n1.ID, Section: domain.SectionHeadline, Position: 0, Headline: "h", Summary: "s"},
		{NewsletterID: n2.ID, Section: domain.SectionInBrief, Position: 0, Headline: "b0", Summary: "s"},
		{NewsletterID: n3.ID, Section: domain.SectionInBrief, Position: 1, Headline: "b1", Summary: "s"},
	}))

	next, err := repos.Edition.NextPosition(ctx, ed.ID, domain.SectionInBrief)
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	next, err = repos.Edition.NextPosition(ctx, ed.ID, domain.SectionWorthYourTime)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	next, err = repos.Edition.NextPosition(ctx, 424242, domain.SectionInBrief)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	labels, err := repos.Setting.Labels(ctx)
	require.NoError(t, err)
	assert.Nil(t, labels)

	require.NoError(t, repos.Setting.SetLabels(ctx, []string{"Newsletters", "Reading"}))
	labels, err = repos.Setting.Labels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Newsletters", "Reading"}, labels)

	require.NoError(t, repos.Setting.SetInterests(ctx, []string{"AI", "Design", "Startups"}))
	interests, err := repos.Setting.Interests(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AI", "Design", "Startups"}, interests)

	require.NoError(t, repos.Setting.SetInterests(ctx, nil))
	interests, err = repos.Setting.Interests(ctx)
	require.NoError(t, err)
	assert.Empty(t, interests)

	val, err := repos.Setting.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, val)
}

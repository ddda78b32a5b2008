// Package gazette builds daily editions: a ranked three-tier gazette and the streaming per-newsletter path
package gazette

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/nldigest/pkg/content"
	"github.com/umputun/nldigest/pkg/domain"
)

//go:generate moq -out mocks/newsletter_store.go -pkg mocks -skip-ensure -fmt goimports . NewsletterStore
//go:generate moq -out mocks/edition_store.go -pkg mocks -skip-ensure -fmt goimports . EditionStore
//go:generate moq -out mocks/preference_store.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore
//go:generate moq -out mocks/mail_source.go -pkg mocks -skip-ensure -fmt goimports . MailSource
//go:generate moq -out mocks/ranker.go -pkg mocks -skip-ensure -fmt goimports . Ranker
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer

// StatusReady is the status of a stored edition
const StatusReady = "ready"

// ErrNothingToProcess returned when there are no eligible newsletters
var ErrNothingToProcess = errors.New("no unread newsletters available")

// ErrUnknownHeadline returned when the model picked a headline outside the candidate set
var ErrUnknownHeadline = errors.New("headline references unknown newsletter")

// ErrAlreadyProcessed returned for a newsletter that already has an article in some edition
var ErrAlreadyProcessed = errors.New("newsletter already processed")

// NewsletterStore provides newsletter persistence and eligibility queries
type NewsletterStore interface {
	Upsert(ctx context.Context, nl *domain.Newsletter) (bool, error)
	Get(ctx context.Context, id int64) (*domain.Newsletter, error)
	Unprocessed(ctx context.Context, limit int) ([]domain.Newsletter, error)
	KeptUnprocessedIDs(ctx context.Context) ([]int64, error)
	IsProcessed(ctx context.Context, id int64) (bool, error)
}

// EditionStore persists editions and their articles
type EditionStore interface {
	GetByDate(ctx context.Context, date string) (*domain.Edition, error)
	CreateWithArticles(ctx context.Context, edition *domain.Edition, articles []domain.EditionArticle) error
	Ensure(ctx context.Context, date string, generatedAt time.Time) (*domain.Edition, error)
	AddArticle(ctx context.Context, article *domain.EditionArticle) error
	NextPosition(ctx context.Context, editionID int64, section domain.Section) (int, error)
}

// PreferenceStore provides reader preferences
type PreferenceStore interface {
	Labels(ctx context.Context) ([]string, error)
	Interests(ctx context.Context) ([]string, error)
}

// MailSource fetches unread newsletters under a label
type MailSource interface {
	Fetch(ctx context.Context, label string, maxResults int) ([]domain.Newsletter, error)
}

// Ranker selects and ranks candidates into a gazette
type Ranker interface {
	RankGazette(ctx context.Context, candidates []domain.Candidate, interests []string) (*domain.Gazette, error)
}

// Summarizer summarizes a single newsletter
type Summarizer interface {
	Summarize(ctx context.Context, html string) (*domain.ArticleSummary, error)
}

// Result is returned by a successful gazette run
type Result struct {
	EditionID int64  `json:"editionId"`
	Status    string `json:"status"`
}

// Prepared is an edition ready to be filled by the streaming summarizer
type Prepared struct {
	EditionID     int64   `json:"editionId"`
	NewsletterIDs []int64 `json:"newsletterIds"`
}

// Params for the Generator
type Params struct {
	Newsletters NewsletterStore
	Editions    EditionStore
	Preferences PreferenceStore
	Mail        MailSource
	Ranker      Ranker

	PoolSize        int    // max candidates in the ranking prompt
	ExcerptLength   int    // max characters of content per candidate
	MaxResults      int    // max messages fetched per label
	DefaultLabel    string // used when no labels are selected
	DefaultInterest string // used when no interests are set

	Now func() time.Time // defaults to time.Now
}

// Generator runs the end-to-end gazette generation. Runs are serialized.
type Generator struct {
	Params
	mu sync.Mutex
}

// NewGenerator makes a Generator, zero params get defaults
func NewGenerator(p Params) *Generator {
	if p.PoolSize <= 0 {
		p.PoolSize = DefaultPoolSize
	}
	if p.ExcerptLength <= 0 {
		p.ExcerptLength = DefaultExcerptLength
	}
	if p.MaxResults <= 0 {
		p.MaxResults = 50
	}
	if p.DefaultLabel == "" {
		p.DefaultLabel = "Newsletters"
	}
	if p.DefaultInterest == "" {
		p.DefaultInterest = "General"
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	return &Generator{Params: p}
}

// Generate makes today's edition if there is none yet and returns its id.
// A second call on the same UTC day returns the stored edition without calling the model.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.Now()
	date := domain.EditionDate(now)

	existing, err := g.Editions.GetByDate(ctx, date)
	if err == nil {
		lgr.Printf("[INFO] edition for %s already exists, id=%d", date, existing.ID)
		return &Result{EditionID: existing.ID, Status: StatusReady}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check today's edition: %w", err)
	}

	if _, err := g.Ingest(ctx); err != nil {
		return nil, err
	}

	eligible, err := g.Newsletters.Unprocessed(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("get eligible newsletters: %w", err)
	}
	if len(eligible) == 0 {
		return nil, ErrNothingToProcess
	}

	candidates := prepareCandidates(eligible, g.PoolSize, g.ExcerptLength)
	interests, err := g.interests(ctx)
	if err != nil {
		return nil, err
	}
	lgr.Printf("[INFO] ranking %d of %d eligible newsletters for %s", len(candidates), len(eligible), date)

	gz, err := g.Ranker.RankGazette(ctx, candidates, interests)
	if err != nil {
		return nil, err
	}

	articles, err := buildArticles(gz, eligible[:len(candidates)])
	if err != nil {
		return nil, err
	}

	edition := &domain.Edition{EditionDate: date, GeneratedAt: now}
	if err := g.Editions.CreateWithArticles(ctx, edition, articles); err != nil {
		if errors.Is(err, domain.ErrEditionExists) {
			winner, gerr := g.Editions.GetByDate(ctx, date)
			if gerr != nil {
				return nil, fmt.Errorf("get concurrent edition: %w", gerr)
			}
			lgr.Printf("[WARN] edition for %s was created concurrently, id=%d", date, winner.ID)
			return &Result{EditionID: winner.ID, Status: StatusReady}, nil
		}
		return nil, fmt.Errorf("store edition: %w", err)
	}

	lgr.Printf("[INFO] edition %d for %s stored with %d articles", edition.ID, date, len(articles))
	return &Result{EditionID: edition.ID, Status: StatusReady}, nil
}

// Ingest pulls unread newsletters for all selected labels and stores the new ones.
// Messages seen under several labels are stored once. Returns the number of new newsletters.
func (g *Generator) Ingest(ctx context.Context) (int, error) {
	labels, err := g.Preferences.Labels(ctx)
	if err != nil {
		return 0, fmt.Errorf("get labels: %w", err)
	}
	if len(labels) == 0 {
		labels = []string{g.DefaultLabel}
	}

	seen := map[string]bool{}
	var fetched []domain.Newsletter
	for _, label := range labels {
		nls, err := g.Mail.Fetch(ctx, label, g.MaxResults)
		if err != nil {
			return 0, fmt.Errorf("fetch label %q: %w", label, err)
		}
		for _, nl := range nls {
			if seen[nl.ExternalID] {
				continue
			}
			seen[nl.ExternalID] = true
			fetched = append(fetched, nl)
		}
	}

	created := 0
	for i := range fetched {
		isNew, err := g.Newsletters.Upsert(ctx, &fetched[i])
		if err != nil {
			return created, fmt.Errorf("store newsletter %s: %w", fetched[i].ExternalID, err)
		}
		if isNew {
			created++
		}
	}
	lgr.Printf("[DEBUG] ingested %d messages from %d labels, %d new", len(fetched), len(labels), created)
	return created, nil
}

// PrepareStream returns today's edition and the kept newsletters not yet in any edition,
// to be summarized one by one with Streamer
func (g *Generator) PrepareStream(ctx context.Context) (*Prepared, error) {
	ids, err := g.Newsletters.KeptUnprocessedIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get kept newsletters: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrNothingToProcess
	}

	now := g.Now()
	edition, err := g.Editions.Ensure(ctx, domain.EditionDate(now), now)
	if err != nil {
		return nil, fmt.Errorf("ensure edition: %w", err)
	}
	return &Prepared{EditionID: edition.ID, NewsletterIDs: ids}, nil
}

func (g *Generator) interests(ctx context.Context) ([]string, error) {
	interests, err := g.Preferences.Interests(ctx)
	if err != nil {
		return nil, fmt.Errorf("get interests: %w", err)
	}
	if len(interests) == 0 {
		return []string{g.DefaultInterest}, nil
	}
	return interests, nil
}

// buildArticles maps the ranked gazette to edition articles. Entries pointing outside the candidates,
// or repeating a newsletter already placed, are dropped.
func buildArticles(gz *domain.Gazette, candidates []domain.Newsletter) ([]domain.EditionArticle, error) {
	byID := make(map[int64]domain.Newsletter, len(candidates))
	for _, nl := range candidates {
		byID[nl.ID] = nl
	}
	used := map[int64]bool{}

	// accept reports whether the newsletter can be placed and returns its reading time
	accept := func(id int64, section domain.Section) (int, bool) {
		nl, ok := byID[id]
		if !ok {
			lgr.Printf("[WARN] %s entry references unknown newsletter %d, skipped", section, id)
			return 0, false
		}
		if used[id] {
			lgr.Printf("[WARN] %s entry repeats newsletter %d, skipped", section, id)
			return 0, false
		}
		used[id] = true
		return content.ReadingTime(nl.RawHTML), true
	}

	if gz == nil || gz.Headline == nil {
		return nil, fmt.Errorf("%w: no headline", ErrUnknownHeadline)
	}
	h := gz.Headline
	readingTime, ok := accept(h.NewsletterID, domain.SectionHeadline)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHeadline, h.NewsletterID)
	}
	res := []domain.EditionArticle{{
		NewsletterID: h.NewsletterID,
		Category:     h.InterestTag,
		Section:      domain.SectionHeadline,
		Position:     0,
		Headline:     h.Title,
		Summary:      h.Summary,
		KeyPoints:    nonNil(h.Takeaways),
		ReadingTime:  readingTime,
	}}

	for i, w := range gz.WorthYourTime {
		readingTime, ok := accept(w.NewsletterID, domain.SectionWorthYourTime)
		if !ok {
			continue
		}
		res = append(res, domain.EditionArticle{
			NewsletterID:    w.NewsletterID,
			Category:        w.InterestTag,
			Section:         domain.SectionWorthYourTime,
			Position:        i,
			Headline:        w.Hook,
			Summary:         w.Hook,
			KeyPoints:       nonNil(w.Takeaways),
			ExpandedSummary: optional(w.ExpandedSummary),
			ReadingTime:     readingTime,
		})
	}

	for i, b := range gz.InBrief {
		readingTime, ok := accept(b.NewsletterID, domain.SectionInBrief)
		if !ok {
			continue
		}
		res = append(res, domain.EditionArticle{
			NewsletterID:    b.NewsletterID,
			Category:        b.InterestTag,
			Section:         domain.SectionInBrief,
			Position:        i,
			Headline:        b.OneLiner,
			Summary:         b.OneLiner,
			KeyPoints:       []string{},
			ExpandedSummary: optional(b.ExpandedSummary),
			ReadingTime:     readingTime,
		})
	}
	return res, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

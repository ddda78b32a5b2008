package gazette

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/nldigest/pkg/domain"
)

// default streaming batch settings
const (
	DefaultBatchSize  = 3
	DefaultBatchDelay = 500 * time.Millisecond
)

// StreamParams for the Streamer
type StreamParams struct {
	Newsletters NewsletterStore
	Editions    EditionStore
	Summarizer  Summarizer
	BatchSize   int
	BatchDelay  time.Duration
}

// Streamer summarizes newsletters in small concurrent batches and reports each result as it finishes
type Streamer struct {
	StreamParams
}

// NewStreamer makes a Streamer. Zero batch size and negative delay get defaults.
func NewStreamer(p StreamParams) *Streamer {
	if p.BatchSize <= 0 {
		p.BatchSize = DefaultBatchSize
	}
	if p.BatchDelay < 0 {
		p.BatchDelay = DefaultBatchDelay
	}
	return &Streamer{StreamParams: p}
}

// Stream summarizes ids into the edition. emit is called once per id with an article or error event,
// never concurrently, and then once with a complete event. Failures of single items do not stop the run.
// Newsletters already present in any edition are reported as errors without calling the summarizer.
// Articles are appended after the in-brief articles the edition already has, in the order of ids.
// Cancelled context stops the run before the next batch and returns ctx.Err() without the complete event.
func (s *Streamer) Stream(ctx context.Context, editionID int64, ids []int64, emit func(domain.StreamEvent)) error {
	total := len(ids)
	base := 0
	if total > 0 {
		next, err := s.Editions.NextPosition(ctx, editionID, domain.SectionInBrief)
		if err != nil {
			return fmt.Errorf("get next position in edition %d: %w", editionID, err)
		}
		base = next
	}
	position := make(map[int64]int, total)
	for i, id := range ids {
		if _, ok := position[id]; !ok {
			position[id] = base + i
		}
	}

	var mu sync.Mutex
	completed := 0
	report := func(view *domain.ArticleView) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		ev := domain.StreamEvent{Type: domain.EventArticle, Article: view, Progress: &domain.Progress{Current: completed, Total: total}}
		if view == nil {
			ev.Type = domain.EventError
		}
		emit(ev)
	}

	for start := 0; start < total; start += s.BatchSize {
		if start > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.BatchDelay):
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		batch := ids[start:min(start+s.BatchSize, total)]
		var eg errgroup.Group
		for _, id := range batch {
			eg.Go(func() error {
				view, err := s.process(ctx, editionID, id, position[id])
				if err != nil {
					lgr.Printf("[WARN] failed to summarize newsletter %d: %v", id, err)
					report(nil)
					return nil
				}
				report(view)
				return nil
			})
		}
		_ = eg.Wait()
	}

	emit(domain.StreamEvent{Type: domain.EventComplete})
	lgr.Printf("[INFO] streaming run for edition %d finished, %d items", editionID, total)
	return nil
}

// process summarizes one newsletter and stores it as an in-brief article of the edition
func (s *Streamer) process(ctx context.Context, editionID, id int64, position int) (*domain.ArticleView, error) {
	processed, err := s.Newsletters.IsProcessed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check processed: %w", err)
	}
	if processed {
		return nil, fmt.Errorf("newsletter %d: %w", id, ErrAlreadyProcessed)
	}

	nl, err := s.Newsletters.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get newsletter: %w", err)
	}

	summary, err := s.Summarizer.Summarize(ctx, nl.RawHTML)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	article := domain.EditionArticle{
		EditionID:    editionID,
		NewsletterID: nl.ID,
		Category:     summary.Category,
		Section:      domain.SectionInBrief,
		Position:     position,
		Headline:     summary.Headline,
		Summary:      summary.Summary,
		KeyPoints:    nonNil(summary.KeyPoints),
		ReadingTime:  summary.ReadingTime,
	}
	if err := s.Editions.AddArticle(ctx, &article); err != nil {
		return nil, fmt.Errorf("store article: %w", err)
	}

	return &domain.ArticleView{EditionArticle: article, Sender: nl.Sender, RawHTML: nl.RawHTML, ReceivedAt: nl.ReceivedAt}, nil
}

// Package scheduler runs background mail ingestion and daily gazette generation
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/nldigest/pkg/gazette"
	"github.com/umputun/nldigest/pkg/mail"
)

// Ingester pulls new newsletters from the mailbox
type Ingester interface {
	Ingest(ctx context.Context) (int, error)
}

// Generator makes the daily gazette, returning the stored one when it already exists
type Generator interface {
	Generate(ctx context.Context) (*gazette.Result, error)
}

// Params for the Scheduler
type Params struct {
	Ingester         Ingester
	Generator        Generator // optional, nil disables background generation
	IngestInterval   time.Duration
	GenerateInterval time.Duration
}

// Scheduler manages periodic ingestion and generation
type Scheduler struct {
	ingester         Ingester
	generator        Generator
	ingestInterval   time.Duration
	generateInterval time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(p Params) *Scheduler {
	if p.IngestInterval <= 0 {
		p.IngestInterval = 30 * time.Minute
	}
	if p.GenerateInterval <= 0 {
		p.GenerateInterval = time.Hour
	}
	return &Scheduler{
		ingester:         p.Ingester,
		generator:        p.Generator,
		ingestInterval:   p.IngestInterval,
		generateInterval: p.GenerateInterval,
	}
}

// Start begins the background workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.worker(ctx, s.ingestInterval, s.ingest)

	if s.generator != nil {
		s.wg.Add(1)
		go s.worker(ctx, s.generateInterval, s.generate)
	}

	lgr.Printf("[INFO] scheduler started with ingest interval %v, generation enabled: %v, generate interval %v",
		s.ingestInterval, s.generator != nil, s.generateInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// worker runs fn immediately and then on every tick until ctx is done
func (s *Scheduler) worker(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fn(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

func (s *Scheduler) ingest(ctx context.Context) {
	n, err := s.ingester.Ingest(ctx)
	switch {
	case errors.Is(err, mail.ErrNotConfigured):
		lgr.Printf("[DEBUG] scheduled ingestion skipped, mailbox not configured")
	case err != nil && ctx.Err() == nil:
		lgr.Printf("[WARN] scheduled ingestion failed: %v", err)
	case err == nil:
		lgr.Printf("[DEBUG] scheduled ingestion done, %d new newsletters", n)
	}
}

func (s *Scheduler) generate(ctx context.Context) {
	res, err := s.generator.Generate(ctx)
	switch {
	case errors.Is(err, gazette.ErrNothingToProcess):
		lgr.Printf("[DEBUG] scheduled generation skipped, nothing to process")
	case errors.Is(err, mail.ErrNotConfigured):
		lgr.Printf("[DEBUG] scheduled generation skipped, mailbox not configured")
	case err != nil && ctx.Err() == nil:
		lgr.Printf("[WARN] scheduled generation failed: %v", err)
	case err == nil:
		lgr.Printf("[DEBUG] daily edition %d is %s", res.EditionID, res.Status)
	}
}

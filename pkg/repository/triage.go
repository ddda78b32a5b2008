package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/nldigest/pkg/domain"
)

// TriageRepository stores triage decisions
type TriageRepository struct {
	db *sqlx.DB
}

// TriageStats holds decision counters
type TriageStats struct {
	Triaged int `db:"triaged"`
	Kept    int `db:"kept"`
}

// NewTriageRepository creates a new triage repository
func NewTriageRepository(db *sqlx.DB) *TriageRepository {
	return &TriageRepository{db: db}
}

// Record saves the decision for a newsletter, replacing any earlier decision
func (r *TriageRepository) Record(ctx context.Context, d domain.TriageDecision) error {
	if !d.Decision.Valid() {
		return fmt.Errorf("invalid decision %q", d.Decision)
	}
	if d.TriagedAt.IsZero() {
		d.TriagedAt = time.Now()
	}

	err := lockRetrier().Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO triage_decisions (newsletter_id, decision, triaged_at) VALUES (?, ?, ?)
			ON CONFLICT(newsletter_id) DO UPDATE SET decision = excluded.decision, triaged_at = excluded.triaged_at`,
			d.NewsletterID, string(d.Decision), d.TriagedAt.UTC())
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("record decision: %w", err)}
		}
		return nil
	}, &criticalError{})
	return unwrapCritical(err)
}

// Stats returns the number of triaged and kept newsletters
func (r *TriageRepository) Stats(ctx context.Context) (TriageStats, error) {
	var st TriageStats
	err := r.db.GetContext(ctx, &st, `
		SELECT COUNT(*) AS triaged, COALESCE(SUM(CASE WHEN decision = 'kept' THEN 1 ELSE 0 END), 0) AS kept
		FROM triage_decisions`)
	if err != nil {
		return TriageStats{}, fmt.Errorf("get triage stats: %w", err)
	}
	return st, nil
}

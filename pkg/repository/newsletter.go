package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/nldigest/pkg/domain"
)

const newsletterColumns = "n.id, n.external_id, n.sender, n.subject, n.snippet, n.received_at, n.raw_html"

// NewsletterRepository handles newsletter storage and eligibility queries
type NewsletterRepository struct {
	db *sqlx.DB
}

type newsletterRow struct {
	ID         int64     `db:"id"`
	ExternalID string    `db:"external_id"`
	Sender     string    `db:"sender"`
	Subject    string    `db:"subject"`
	Snippet    string    `db:"snippet"`
	ReceivedAt time.Time `db:"received_at"`
	RawHTML    string    `db:"raw_html"`
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(db *sqlx.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Upsert inserts a newsletter unless one with the same external id exists.
// It sets nl.ID in both cases and reports whether a row was created.
func (r *NewsletterRepository) Upsert(ctx context.Context, nl *domain.Newsletter) (created bool, err error) {
	err = lockRetrier().Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO newsletters (external_id, sender, subject, snippet, received_at, raw_html)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(external_id) DO NOTHING`,
			nl.ExternalID, nl.Sender, nl.Subject, nl.Snippet, nl.ReceivedAt.UTC(), nl.RawHTML)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert newsletter: %w", err)}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		created = affected > 0
		return nil
	}, &criticalError{})
	if err != nil {
		return false, unwrapCritical(err)
	}

	if err := r.db.GetContext(ctx, &nl.ID, "SELECT id FROM newsletters WHERE external_id = ?", nl.ExternalID); err != nil {
		return false, fmt.Errorf("get newsletter id: %w", err)
	}
	return created, nil
}

// Get returns a newsletter by id, domain.ErrNotFound if missing
func (r *NewsletterRepository) Get(ctx context.Context, id int64) (*domain.Newsletter, error) {
	var row newsletterRow
	err := r.db.GetContext(ctx, &row, "SELECT "+newsletterColumns+" FROM newsletters n WHERE n.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("newsletter %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get newsletter: %w", err)
	}
	nl := row.toDomain()
	return &nl, nil
}

// Unprocessed returns newsletters not referenced by any edition article, most recent first.
// Zero limit means no limit.
func (r *NewsletterRepository) Unprocessed(ctx context.Context, limit int) ([]domain.Newsletter, error) {
	q := sq.Select(newsletterColumns).
		From("newsletters n").
		Where("n.id NOT IN (SELECT newsletter_id FROM edition_articles)").
		OrderBy("n.received_at DESC", "n.id DESC")
	return r.selectNewsletters(ctx, q, limit)
}

// Untriaged returns newsletters without a triage decision, most recent first
func (r *NewsletterRepository) Untriaged(ctx context.Context, limit int) ([]domain.Newsletter, error) {
	q := sq.Select(newsletterColumns).
		From("newsletters n").
		LeftJoin("triage_decisions t ON t.newsletter_id = n.id").
		Where(sq.Eq{"t.id": nil}).
		OrderBy("n.received_at DESC", "n.id DESC")
	return r.selectNewsletters(ctx, q, limit)
}

// KeptUnprocessedIDs returns ids of kept newsletters not yet in any edition, oldest decision first
func (r *NewsletterRepository) KeptUnprocessedIDs(ctx context.Context) ([]int64, error) {
	query, args, err := sq.Select("t.newsletter_id").
		From("triage_decisions t").
		Where(sq.Eq{"t.decision": string(domain.DecisionKept)}).
		Where("t.newsletter_id NOT IN (SELECT newsletter_id FROM edition_articles)").
		OrderBy("t.triaged_at", "t.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build kept query: %w", err)
	}

	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("get kept newsletters: %w", err)
	}
	return ids, nil
}

// IsProcessed reports whether the newsletter already has an article in any edition
func (r *NewsletterRepository) IsProcessed(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := r.db.GetContext(ctx, &found, "SELECT EXISTS(SELECT 1 FROM edition_articles WHERE newsletter_id = ?)", id)
	if err != nil {
		return false, fmt.Errorf("check newsletter %d processed: %w", id, err)
	}
	return found, nil
}

// Count returns the total number of stored newsletters
func (r *NewsletterRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM newsletters"); err != nil {
		return 0, fmt.Errorf("count newsletters: %w", err)
	}
	return count, nil
}

func (r *NewsletterRepository) selectNewsletters(ctx context.Context, q sq.SelectBuilder, limit int) ([]domain.Newsletter, error) {
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build newsletters query: %w", err)
	}

	var rows []newsletterRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select newsletters: %w", err)
	}

	res := make([]domain.Newsletter, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

func (r newsletterRow) toDomain() domain.Newsletter {
	return domain.Newsletter{
		ID:         r.ID,
		ExternalID: r.ExternalID,
		Sender:     r.Sender,
		Subject:    r.Subject,
		Snippet:    r.Snippet,
		ReceivedAt: r.ReceivedAt,
		RawHTML:    r.RawHTML,
	}
}

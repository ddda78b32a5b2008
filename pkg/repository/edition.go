package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/nldigest/pkg/domain"
)

// EditionRepository handles editions and their articles
type EditionRepository struct {
	db *sqlx.DB
}

type editionRow struct {
	ID          int64     `db:"id"`
	EditionDate string    `db:"edition_date"`
	GeneratedAt time.Time `db:"generated_at"`
}

type articleRow struct {
	ID              int64          `db:"id"`
	EditionID       int64          `db:"edition_id"`
	NewsletterID    int64          `db:"newsletter_id"`
	Category        string         `db:"category"`
	Section         string         `db:"section"`
	Position        int            `db:"position"`
	Headline        string         `db:"headline"`
	Summary         string         `db:"summary"`
	KeyPoints       string         `db:"key_points"`
	ExpandedSummary sql.NullString `db:"expanded_summary"`
	ReadingTime     int            `db:"reading_time"`
	Sender          string         `db:"sender"`
	RawHTML         string         `db:"raw_html"`
	ReceivedAt      time.Time      `db:"received_at"`
}

// NewEditionRepository creates a new edition repository
func NewEditionRepository(db *sqlx.DB) *EditionRepository {
	return &EditionRepository{db: db}
}

// Get returns an edition by id, domain.ErrNotFound if missing
func (r *EditionRepository) Get(ctx context.Context, id int64) (*domain.Edition, error) {
	var row editionRow
	err := r.db.GetContext(ctx, &row, "SELECT id, edition_date, generated_at FROM editions WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("edition %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get edition: %w", err)
	}
	return row.toDomain(), nil
}

// GetByDate returns the edition for a YYYY-MM-DD date, domain.ErrNotFound if missing
func (r *EditionRepository) GetByDate(ctx context.Context, date string) (*domain.Edition, error) {
	var row editionRow
	err := r.db.GetContext(ctx, &row, "SELECT id, edition_date, generated_at FROM editions WHERE edition_date = ?", date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("edition for %s: %w", date, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get edition by date: %w", err)
	}
	return row.toDomain(), nil
}

// Latest returns the most recently generated edition, domain.ErrNotFound if there are none
func (r *EditionRepository) Latest(ctx context.Context) (*domain.Edition, error) {
	editions, err := r.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(editions) == 0 {
		return nil, fmt.Errorf("latest edition: %w", domain.ErrNotFound)
	}
	return &editions[0], nil
}

// List returns editions newest first, zero limit means all
func (r *EditionRepository) List(ctx context.Context, limit int) ([]domain.Edition, error) {
	q := sq.Select("id", "edition_date", "generated_at").From("editions").OrderBy("generated_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build editions query: %w", err)
	}

	var rows []editionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list editions: %w", err)
	}
	res := make([]domain.Edition, len(rows))
	for i, row := range rows {
		res[i] = *row.toDomain()
	}
	return res, nil
}

// Count returns the number of editions
func (r *EditionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM editions"); err != nil {
		return 0, fmt.Errorf("count editions: %w", err)
	}
	return count, nil
}

// CreateWithArticles writes the edition header and all its articles in one transaction.
// Returns domain.ErrEditionExists if an edition for the same date is already stored, nothing is written then.
func (r *EditionRepository) CreateWithArticles(ctx context.Context, edition *domain.Edition, articles []domain.EditionArticle) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, "INSERT INTO editions (edition_date, generated_at) VALUES (?, ?)",
		edition.EditionDate, edition.GeneratedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEditionExists
		}
		return fmt.Errorf("insert edition: %w", err)
	}
	editionID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get edition id: %w", err)
	}

	for i := range articles {
		articles[i].EditionID = editionID
		if err := insertArticle(ctx, tx, &articles[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit edition: %w", err)
	}
	edition.ID = editionID
	return nil
}

// Ensure returns the edition for the given date, creating it when missing
func (r *EditionRepository) Ensure(ctx context.Context, date string, generatedAt time.Time) (*domain.Edition, error) {
	err := lockRetrier().Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO editions (edition_date, generated_at) VALUES (?, ?) ON CONFLICT(edition_date) DO NOTHING",
			date, generatedAt.UTC())
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("ensure edition: %w", err)}
		}
		return nil
	}, &criticalError{})
	if err != nil {
		return nil, unwrapCritical(err)
	}
	return r.GetByDate(ctx, date)
}

// NextPosition returns the position after the last article of the section, 0 for an empty section
func (r *EditionRepository) NextPosition(ctx context.Context, editionID int64, section domain.Section) (int, error) {
	var next int
	err := r.db.GetContext(ctx, &next,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM edition_articles WHERE edition_id = ? AND section = ?",
		editionID, string(section))
	if err != nil {
		return 0, fmt.Errorf("get next position: %w", err)
	}
	return next, nil
}

// AddArticle stores a single article and sets its id.
// A second article for the same newsletter in the edition fails with domain.ErrArticleExists.
func (r *EditionRepository) AddArticle(ctx context.Context, article *domain.EditionArticle) error {
	err := lockRetrier().Do(ctx, func() error {
		if err := insertArticle(ctx, r.db, article); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: err}
		}
		return nil
	}, &criticalError{})
	return unwrapCritical(err)
}

// Articles returns articles of an edition joined with their newsletters, ordered by section and position
func (r *EditionRepository) Articles(ctx context.Context, editionID int64) ([]domain.ArticleView, error) {
	query, args, err := sq.Select(
		"a.id", "a.edition_id", "a.newsletter_id", "a.category", "a.section", "a.position",
		"a.headline", "a.summary", "a.key_points", "a.expanded_summary", "a.reading_time",
		"n.sender", "n.raw_html", "n.received_at").
		From("edition_articles a").
		Join("newsletters n ON n.id = a.newsletter_id").
		Where(sq.Eq{"a.edition_id": editionID}).
		OrderBy("a.section", "a.position", "a.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build articles query: %w", err)
	}

	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get edition articles: %w", err)
	}

	res := make([]domain.ArticleView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, view)
	}
	return res, nil
}

// execer is satisfied by both *sqlx.DB and *sqlx.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertArticle(ctx context.Context, ex execer, a *domain.EditionArticle) error {
	keyPoints := a.KeyPoints
	if keyPoints == nil {
		keyPoints = []string{}
	}
	kp, err := json.Marshal(keyPoints)
	if err != nil {
		return fmt.Errorf("marshal key points: %w", err)
	}
	section := a.Section
	if section == "" {
		section = domain.SectionInBrief
	}

	var expanded sql.NullString
	if a.ExpandedSummary != nil {
		expanded = sql.NullString{String: *a.ExpandedSummary, Valid: true}
	}

	res, err := ex.ExecContext(ctx, `
		INSERT INTO edition_articles (
			edition_id, newsletter_id, category, section, position,
			headline, summary, key_points, expanded_summary, reading_time
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.EditionID, a.NewsletterID, a.Category, string(section), a.Position,
		a.Headline, a.Summary, string(kp), expanded, a.ReadingTime)
	if isUniqueViolation(err) {
		return fmt.Errorf("article for newsletter %d: %w", a.NewsletterID, domain.ErrArticleExists)
	}
	if err != nil {
		return fmt.Errorf("insert article for newsletter %d: %w", a.NewsletterID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get article id: %w", err)
	}
	a.ID = id
	a.Section = section
	a.KeyPoints = keyPoints
	return nil
}

func (r editionRow) toDomain() *domain.Edition {
	return &domain.Edition{ID: r.ID, EditionDate: r.EditionDate, GeneratedAt: r.GeneratedAt}
}

func (r articleRow) toDomain() (domain.ArticleView, error) {
	keyPoints := []string{}
	if r.KeyPoints != "" {
		if err := json.Unmarshal([]byte(r.KeyPoints), &keyPoints); err != nil {
			return domain.ArticleView{}, fmt.Errorf("decode key points of article %d: %w", r.ID, err)
		}
	}
	var expanded *string
	if r.ExpandedSummary.Valid {
		s := r.ExpandedSummary.String
		expanded = &s
	}
	return domain.ArticleView{
		EditionArticle: domain.EditionArticle{
			ID:              r.ID,
			EditionID:       r.EditionID,
			NewsletterID:    r.NewsletterID,
			Category:        r.Category,
			Section:         domain.Section(r.Section),
			Position:        r.Position,
			Headline:        r.Headline,
			Summary:         r.Summary,
			KeyPoints:       keyPoints,
			ExpandedSummary: expanded,
			ReadingTime:     r.ReadingTime,
		},
		Sender:     r.Sender,
		RawHTML:    r.RawHTML,
		ReceivedAt: r.ReceivedAt,
	}, nil
}

package server

import (
	"context"

	"github.com/umputun/nldigest/pkg/domain"
	"github.com/umputun/nldigest/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetEdition returns an edition by id
func (r *RepositoryAdapter) GetEdition(ctx context.Context, id int64) (*domain.Edition, error) {
	return r.repos.Edition.Get(ctx, id)
}

// LatestEdition returns the most recently generated edition
func (r *RepositoryAdapter) LatestEdition(ctx context.Context) (*domain.Edition, error) {
	return r.repos.Edition.Latest(ctx)
}

// ListEditions returns editions, newest first
func (r *RepositoryAdapter) ListEditions(ctx context.Context, limit int) ([]domain.Edition, error) {
	return r.repos.Edition.List(ctx, limit)
}

// EditionArticles returns articles of an edition with their newsletters
func (r *RepositoryAdapter) EditionArticles(ctx context.Context, editionID int64) ([]domain.ArticleView, error) {
	return r.repos.Edition.Articles(ctx, editionID)
}

// UntriagedNewsletters returns newsletters without a triage decision
func (r *RepositoryAdapter) UntriagedNewsletters(ctx context.Context, limit int) ([]domain.Newsletter, error) {
	return r.repos.Newsletter.Untriaged(ctx, limit)
}

// Labels returns selected mailbox labels
func (r *RepositoryAdapter) Labels(ctx context.Context) ([]string, error) {
	return r.repos.Setting.Labels(ctx)
}

// SetLabels replaces selected mailbox labels
func (r *RepositoryAdapter) SetLabels(ctx context.Context, labels []string) error {
	return r.repos.Setting.SetLabels(ctx, labels)
}

// Interests returns reader interests
func (r *RepositoryAdapter) Interests(ctx context.Context) ([]string, error) {
	return r.repos.Setting.Interests(ctx)
}

// SetInterests replaces reader interests
func (r *RepositoryAdapter) SetInterests(ctx context.Context, interests []string) error {
	return r.repos.Setting.SetInterests(ctx, interests)
}

// Stats collects counters from all repositories
func (r *RepositoryAdapter) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	var err error
	if st.Newsletters, err = r.repos.Newsletter.Count(ctx); err != nil {
		return st, err
	}
	if st.Editions, err = r.repos.Edition.Count(ctx); err != nil {
		return st, err
	}
	ts, err := r.repos.Triage.Stats(ctx)
	if err != nil {
		return st, err
	}
	st.Triaged, st.Kept = ts.Triaged, ts.Kept
	st.Remaining = max(st.Newsletters-st.Triaged, 0)
	return st, nil
}

package gazette

import (
	"math/rand/v2"
	"time"

	"github.com/umputun/nldigest/pkg/content"
	"github.com/umputun/nldigest/pkg/domain"
)

// default candidate limits
const (
	DefaultPoolSize      = 30
	DefaultExcerptLength = 2000
)

// PrepareCandidates turns the first limit newsletters into ranking candidates, keeping input order.
// Non-positive limit means DefaultPoolSize.
func PrepareCandidates(newsletters []domain.Newsletter, limit int) []domain.Candidate {
	return prepareCandidates(newsletters, limit, DefaultExcerptLength)
}

func prepareCandidates(newsletters []domain.Newsletter, limit, excerptLen int) []domain.Candidate {
	if limit <= 0 {
		limit = DefaultPoolSize
	}
	if excerptLen <= 0 {
		excerptLen = DefaultExcerptLength
	}
	n := min(limit, len(newsletters))

	res := make([]domain.Candidate, 0, n)
	for _, nl := range newsletters[:n] {
		res = append(res, domain.Candidate{
			ID:         nl.ID,
			Sender:     nl.Sender,
			Subject:    nl.Subject,
			ReceivedAt: nl.ReceivedAt.UTC().Format(time.RFC3339),
			Excerpt:    truncate(content.ExtractText(nl.RawHTML), excerptLen),
		})
	}
	return res
}

// truncate cuts s to at most n characters
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// SelectRandom picks a random subset without repeats, sized between minN and min(maxN, len(items)).
// When there are fewer than minN items all of them are returned in the original order.
func SelectRandom[T any](items []T, minN, maxN int) []T {
	if len(items) < minN || len(items) == 0 {
		res := make([]T, len(items))
		copy(res, items)
		return res
	}
	hi := max(min(maxN, len(items)), minN)
	n := minN + rand.IntN(hi-minN+1) //nolint:gosec // not security sensitive

	res := make([]T, 0, n)
	for _, idx := range rand.Perm(len(items))[:n] { //nolint:gosec // not security sensitive
		res = append(res, items[idx])
	}
	return res
}

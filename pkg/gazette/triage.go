package gazette

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/nldigest/pkg/domain"
	"github.com/umputun/nldigest/pkg/mail"
)

//go:generate moq -out mocks/decision_store.go -pkg mocks -skip-ensure -fmt goimports . DecisionStore
//go:generate moq -out mocks/mail_actions.go -pkg mocks -skip-ensure -fmt goimports . MailActions

// ErrInvalidDecision returned for a decision other than kept or skipped
var ErrInvalidDecision = errors.New("invalid triage decision")

// DecisionStore persists triage decisions and lists newsletters waiting for one
type DecisionStore interface {
	Record(ctx context.Context, d domain.TriageDecision) error
	Untriaged(ctx context.Context, limit int) ([]domain.Newsletter, error)
}

// MailActions mirrors triage decisions back to the mailbox
type MailActions interface {
	MarkRead(ctx context.Context, messageID string) error
	AddLabel(ctx context.Context, messageID, label string) error
}

// Triage records keep/skip decisions and deals triage decks
type Triage struct {
	Newsletters NewsletterStore
	Decisions   DecisionStore
	Mail        MailActions
	KeptLabel   string
	DeckMin     int
	DeckMax     int
	Now         func() time.Time
}

// Deck returns a random selection of newsletters without a decision
func (t *Triage) Deck(ctx context.Context) ([]domain.Newsletter, error) {
	nls, err := t.Decisions.Untriaged(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("get untriaged newsletters: %w", err)
	}
	return SelectRandom(nls, t.DeckMin, t.DeckMax), nil
}

// Decide stores the decision and syncs it to the mailbox, skipped messages are marked read
// and kept ones get the kept label. Mailbox failures are logged and do not undo the decision.
func (t *Triage) Decide(ctx context.Context, newsletterID int64, decision domain.Decision) error {
	if !decision.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}
	nl, err := t.Newsletters.Get(ctx, newsletterID)
	if err != nil {
		return fmt.Errorf("get newsletter %d: %w", newsletterID, err)
	}

	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	if err := t.Decisions.Record(ctx, domain.TriageDecision{NewsletterID: nl.ID, Decision: decision, TriagedAt: now()}); err != nil {
		return fmt.Errorf("record decision: %w", err)
	}

	if t.Mail == nil || nl.ExternalID == "" {
		return nil
	}
	switch decision {
	case domain.DecisionSkipped:
		err = t.Mail.MarkRead(ctx, nl.ExternalID)
	case domain.DecisionKept:
		err = t.Mail.AddLabel(ctx, nl.ExternalID, t.KeptLabel)
	}
	switch {
	case errors.Is(err, mail.ErrNotConfigured):
		lgr.Printf("[DEBUG] mailbox not configured, %s decision for %s kept locally", decision, nl.ExternalID)
	case err != nil:
		lgr.Printf("[WARN] failed to sync %s decision for %s to mailbox: %v", decision, nl.ExternalID, err)
	}
	return nil
}

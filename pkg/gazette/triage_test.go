package gazette

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nldigest/pkg/domain"
	"github.com/umputun/nldigest/pkg/gazette/mocks"
	"github.com/umputun/nldigest/pkg/mail"
)

func newTestTriage() (*Triage, *mocks.DecisionStoreMock, *mocks.MailActionsMock) {
	decisions := &mocks.DecisionStoreMock{
		RecordFunc: func(context.Context, domain.TriageDecision) error { return nil },
	}
	mbox := &mocks.MailActionsMock{
		MarkReadFunc: func(context.Context, string) error { return nil },
		AddLabelFunc: func(context.Context, string, string) error { return nil },
	}
	tr := &Triage{
		Newsletters: &mocks.NewsletterStoreMock{
			GetFunc: func(_ context.Context, id int64) (*domain.Newsletter, error) {
				if id == 404 {
					return nil, domain.ErrNotFound
				}
				return &domain.Newsletter{ID: id, ExternalID: "msg-1"}, nil
			},
		},
		Decisions: decisions,
		Mail:      mbox,
		KeptLabel: "nl-dygest/kept",
		DeckMin:   5,
		DeckMax:   10,
		Now:       func() time.Time { return testNow },
	}
	return tr, decisions, mbox
}

func TestTriage_Decide(t *testing.T) {
	t.Run("kept adds label", func(t *testing.T) {
		tr, decisions, mbox := newTestTriage()
		require.NoError(t, tr.Decide(context.Background(), 3, domain.DecisionKept))

		require.Len(t, decisions.RecordCalls(), 1)
		assert.Equal(t, domain.TriageDecision{NewsletterID: 3, Decision: domain.DecisionKept, TriagedAt: testNow},
			decisions.RecordCalls()[0].D)
		require.Len(t, mbox.AddLabelCalls(), 1)
		assert.Equal(t, "msg-1", mbox.AddLabelCalls()[0].MessageID)
		assert.Equal(t, "nl-dygest/kept", mbox.AddLabelCalls()[0].Label)
		assert.Empty(t, mbox.MarkReadCalls())
	})

	t.Run("skipped marks read", func(t *testing.T) {
		tr, _, mbox := newTestTriage()
		require.NoError(t, tr.Decide(context.Background(), 3, domain.DecisionSkipped))
		require.Len(t, mbox.MarkReadCalls(), 1)
		assert.Equal(t, "msg-1", mbox.MarkReadCalls()[0].MessageID)
		assert.Empty(t, mbox.AddLabelCalls())
	})

	t.Run("invalid decision", func(t *testing.T) {
		tr, decisions, _ := newTestTriage()
		err := tr.Decide(context.Background(), 3, domain.Decision("maybe"))
		require.ErrorIs(t, err, ErrInvalidDecision)
		assert.Empty(t, decisions.RecordCalls())
	})

	t.Run("unknown newsletter", func(t *testing.T) {
		tr, decisions, _ := newTestTriage()
		err := tr.Decide(context.Background(), 404, domain.DecisionKept)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, decisions.RecordCalls())
	})

	t.Run("mailbox failure keeps decision", func(t *testing.T) {
		tr, decisions, mbox := newTestTriage()
		mbox.MarkReadFunc = func(context.Context, string) error { return errors.New("offline") }
		require.NoError(t, tr.Decide(context.Background(), 3, domain.DecisionSkipped))
		assert.Len(t, decisions.RecordCalls(), 1)
	})

	t.Run("unconfigured mailbox is not a warning", func(t *testing.T) {
		buf := &bytes.Buffer{}
		lgr.Setup(lgr.Out(buf), lgr.Err(buf), lgr.Debug)
		defer lgr.Setup()

		tr, decisions, _ := newTestTriage()
		tr.Mail = mail.Disabled{}
		require.NoError(t, tr.Decide(context.Background(), 3, domain.DecisionKept))
		assert.Len(t, decisions.RecordCalls(), 1)
		assert.Contains(t, buf.String(), "mailbox not configured")
		assert.NotContains(t, buf.String(), "WARN")
	})

	t.Run("record failure", func(t *testing.T) {
		tr, decisions, mbox := newTestTriage()
		decisions.RecordFunc = func(context.Context, domain.TriageDecision) error { return errors.New("db gone") }
		require.EqualError(t, tr.Decide(context.Background(), 3, domain.DecisionKept), "record decision: db gone")
		assert.Empty(t, mbox.AddLabelCalls())
	})
}

func TestTriage_Deck(t *testing.T) {
	tr, decisions, _ := newTestTriage()
	decisions.UntriagedFunc = func(context.Context, int) ([]domain.Newsletter, error) {
		return sampleNewsletters(20), nil
	}
	deck, err := tr.Deck(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(deck), 5)
	assert.LessOrEqual(t, len(deck), 10)

	decisions.UntriagedFunc = func(context.Context, int) ([]domain.Newsletter, error) {
		return sampleNewsletters(2), nil
	}
	deck, err = tr.Deck(context.Background())
	require.NoError(t, err)
	assert.Len(t, deck, 2)
}

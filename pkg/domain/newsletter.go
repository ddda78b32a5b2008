package domain

import (
	"errors"
	"time"
)

// ErrNotFound returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// Newsletter represents a single ingested email newsletter
type Newsletter struct {
	ID         int64     `json:"id"`
	ExternalID string    `json:"externalId"` // message id from the mail provider, dedup key
	Sender     string    `json:"sender"`
	Subject    string    `json:"subject"`
	Snippet    string    `json:"snippet"`
	ReceivedAt time.Time `json:"receivedAt"`
	RawHTML    string    `json:"rawHtml"`
}

// Decision represents the user's triage verdict
type Decision string

const (
	DecisionKept    Decision = "kept"
	DecisionSkipped Decision = "skipped"
)

// Valid reports whether the decision is one of the known values
func (d Decision) Valid() bool {
	return d == DecisionKept || d == DecisionSkipped
}

// TriageDecision represents a user's decision about a newsletter
type TriageDecision struct {
	NewsletterID int64
	Decision     Decision
	TriagedAt    time.Time
}

// Candidate is a compact newsletter descriptor handed to the ranking prompt
type Candidate struct {
	ID         int64
	Sender     string
	Subject    string
	ReceivedAt string // RFC 3339
	Excerpt    string
}

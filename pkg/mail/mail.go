// Package mail reads newsletters from the mail provider and syncs triage decisions back to it
package mail

import (
	"context"
	"errors"

	"github.com/umputun/nldigest/pkg/domain"
)

// ErrNotConfigured returned when no mail credentials are available
var ErrNotConfigured = errors.New("mail provider is not authenticated")

// ErrLabelNotFound returned when the requested label does not exist in the mailbox
var ErrLabelNotFound = errors.New("label not found")

// Label is a user-defined mailbox label
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Disabled is a mail source used when credentials are missing, every call fails with ErrNotConfigured
type Disabled struct{}

// Fetch always fails with ErrNotConfigured
func (Disabled) Fetch(context.Context, string, int) ([]domain.Newsletter, error) {
	return nil, ErrNotConfigured
}

// ListLabels always fails with ErrNotConfigured
func (Disabled) ListLabels(context.Context) ([]Label, error) { return nil, ErrNotConfigured }

// MarkRead always fails with ErrNotConfigured
func (Disabled) MarkRead(context.Context, string) error { return ErrNotConfigured }

// AddLabel always fails with ErrNotConfigured
func (Disabled) AddLabel(context.Context, string, string) error { return ErrNotConfigured }

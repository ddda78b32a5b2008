package mail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"net/mail"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/umputun/nldigest/pkg/config"
	"github.com/umputun/nldigest/pkg/domain"
)

const (
	userID         = "me"
	labelUnread    = "UNREAD"
	maxParallelGet = 5
)

// Gmail is a mail source backed by the Gmail API
type Gmail struct {
	svc *gmail.Service
	now func() time.Time
}

// NewGmail makes a Gmail source from oauth credentials. Extra client options override the defaults,
// tests use them to point the client to a local server.
func NewGmail(ctx context.Context, cfg config.MailConfig, opts ...option.ClientOption) (*Gmail, error) {
	if len(opts) == 0 {
		if !cfg.Configured() {
			return nil, ErrNotConfigured
		}
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmail.GmailModifyScope},
		}
		token := &oauth2.Token{AccessToken: cfg.AccessToken, RefreshToken: cfg.RefreshToken}
		opts = []option.ClientOption{option.WithTokenSource(oauthCfg.TokenSource(ctx, token))}
	}

	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return &Gmail{svc: svc, now: time.Now}, nil
}

// Fetch returns unread messages under the label, matched case-insensitively
func (g *Gmail) Fetch(ctx context.Context, label string, maxResults int) ([]domain.Newsletter, error) {
	labelID, err := g.findLabel(ctx, label)
	if err != nil {
		return nil, err
	}

	list, err := g.svc.Users.Messages.List(userID).LabelIds(labelID).Q("is:unread").
		MaxResults(int64(maxResults)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list messages for %q: %w", label, err)
	}
	if len(list.Messages) == 0 {
		return []domain.Newsletter{}, nil
	}

	res := make([]domain.Newsletter, len(list.Messages))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelGet)
	for i, m := range list.Messages {
		eg.Go(func() error {
			msg, err := g.svc.Users.Messages.Get(userID, m.Id).Format("full").Context(egCtx).Do()
			if err != nil {
				return fmt.Errorf("get message %s: %w", m.Id, err)
			}
			res[i] = g.parseMessage(msg)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	lgr.Printf("[DEBUG] fetched %d messages from label %q", len(res), label)
	return res, nil
}

// ListLabels returns user-created labels
func (g *Gmail) ListLabels(ctx context.Context) ([]Label, error) {
	resp, err := g.svc.Users.Labels.List(userID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	res := []Label{}
	for _, l := range resp.Labels {
		if l.Type != "user" {
			continue
		}
		res = append(res, Label{ID: l.Id, Name: l.Name})
	}
	return res, nil
}

// MarkRead removes the unread flag from a message
func (g *Gmail) MarkRead(ctx context.Context, messageID string) error {
	req := &gmail.ModifyMessageRequest{RemoveLabelIds: []string{labelUnread}}
	if _, err := g.svc.Users.Messages.Modify(userID, messageID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("mark %s read: %w", messageID, err)
	}
	return nil
}

// AddLabel attaches a label to a message, creating the label if needed
func (g *Gmail) AddLabel(ctx context.Context, messageID, label string) error {
	labelID, err := g.findLabel(ctx, label)
	if err != nil {
		if !errors.Is(err, ErrLabelNotFound) {
			return err
		}
		created, err := g.svc.Users.Labels.Create(userID, &gmail.Label{
			Name:                  label,
			LabelListVisibility:   "labelShow",
			MessageListVisibility: "show",
		}).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("create label %q: %w", label, err)
		}
		labelID = created.Id
	}

	req := &gmail.ModifyMessageRequest{AddLabelIds: []string{labelID}}
	if _, err := g.svc.Users.Messages.Modify(userID, messageID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("add label %q to %s: %w", label, messageID, err)
	}
	return nil
}

func (g *Gmail) findLabel(ctx context.Context, name string) (string, error) {
	resp, err := g.svc.Users.Labels.List(userID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("list labels: %w", err)
	}
	for _, l := range resp.Labels {
		if strings.EqualFold(l.Name, name) {
			return l.Id, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrLabelNotFound)
}

func (g *Gmail) parseMessage(msg *gmail.Message) domain.Newsletter {
	nl := domain.Newsletter{ExternalID: msg.Id, Snippet: html.UnescapeString(msg.Snippet)}
	if msg.Payload == nil {
		nl.ReceivedAt = g.now()
		return nl
	}

	nl.Sender = header(msg.Payload.Headers, "From")
	nl.Subject = header(msg.Payload.Headers, "Subject")
	nl.ReceivedAt = g.receivedAt(msg)

	if body := partBody(msg.Payload, "text/html"); body != "" {
		nl.RawHTML = body
	} else if text := partBody(msg.Payload, "text/plain"); text != "" {
		nl.RawHTML = "<pre>" + html.EscapeString(text) + "</pre>"
	}
	return nl
}

func (g *Gmail) receivedAt(msg *gmail.Message) time.Time {
	if date := header(msg.Payload.Headers, "Date"); date != "" {
		if t, err := mail.ParseDate(date); err == nil {
			return t.UTC()
		}
	}
	if msg.InternalDate > 0 {
		return time.UnixMilli(msg.InternalDate).UTC()
	}
	return g.now().UTC()
}

func header(headers []*gmail.MessagePartHeader, name string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// partBody returns the first decoded body of the given mime type, searched depth-first
func partBody(part *gmail.MessagePart, mimeType string) string {
	if part == nil {
		return ""
	}
	if part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
		data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(part.Body.Data, "="))
		if err == nil {
			return string(data)
		}
	}
	for _, p := range part.Parts {
		if body := partBody(p, mimeType); body != "" {
			return body
		}
	}
	return ""
}

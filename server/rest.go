package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/nldigest/pkg/domain"
	"github.com/umputun/nldigest/pkg/gazette"
	"github.com/umputun/nldigest/pkg/mail"
)

const (
	defaultEditionsLimit    = 30
	defaultNewslettersLimit = 100
	minInterests            = 3
	maxInterests            = 8
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, rest.JSON{
		"status":  "ok",
		"version": s.cfg.Version,
		"time":    time.Now().UTC(),
	})
}

// statsHandler returns newsletter, edition and triage counters
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.Stats(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// generateGazetteHandler makes today's gazette edition or returns the existing one
func (s *Server) generateGazetteHandler(w http.ResponseWriter, r *http.Request) {
	extendWriteDeadline(w)
	res, err := s.gazette.Generate(r.Context())
	if err != nil {
		lgr.Printf("[WARN] gazette generation failed: %v", err)
		renderError(w, r, err, statusFor(err))
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// prepareEditionHandler returns today's edition and the kept newsletters to stream into it
func (s *Server) prepareEditionHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.gazette.PrepareStream(r.Context())
	if err != nil {
		lgr.Printf("[WARN] edition preparation failed: %v", err)
		renderError(w, r, err, statusFor(err))
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// listEditionsHandler returns editions, newest first
func (s *Server) listEditionsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultEditionsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			renderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = n
	}

	editions, err := s.db.ListEditions(r.Context(), limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to list editions: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if editions == nil {
		editions = []domain.Edition{}
	}
	renderJSON(w, r, http.StatusOK, editions)
}

// getEditionHandler returns an edition with its articles grouped by section
func (s *Server) getEditionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, errors.New("invalid edition ID"), http.StatusBadRequest)
		return
	}

	edition, err := s.db.GetEdition(r.Context(), id)
	if err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}

	articles, err := s.db.EditionArticles(r.Context(), id)
	if err != nil {
		lgr.Printf("[ERROR] failed to get articles of edition %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	grouped := domain.GroupBySection(articles)
	for _, sec := range []domain.Section{domain.SectionHeadline, domain.SectionWorthYourTime, domain.SectionInBrief} {
		if grouped[sec] == nil {
			grouped[sec] = []domain.ArticleView{}
		}
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"edition": edition, "articles": grouped})
}

// listNewslettersHandler pulls new mail when possible and returns newsletters waiting for triage
func (s *Server) listNewslettersHandler(w http.ResponseWriter, r *http.Request) {
	s.ingest(r)
	nls, err := s.db.UntriagedNewsletters(r.Context(), defaultNewslettersLimit)
	if err != nil {
		lgr.Printf("[ERROR] failed to list newsletters: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if nls == nil {
		nls = []domain.Newsletter{}
	}
	renderJSON(w, r, http.StatusOK, nls)
}

// deckHandler returns a random triage deck
func (s *Server) deckHandler(w http.ResponseWriter, r *http.Request) {
	s.ingest(r)
	deck, err := s.triage.Deck(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to deal triage deck: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if deck == nil {
		deck = []domain.Newsletter{}
	}
	renderJSON(w, r, http.StatusOK, deck)
}

// triageHandler records a keep/skip decision
func (s *Server) triageHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewsletterID int64           `json:"newsletterId"`
		Decision     domain.Decision `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if req.NewsletterID <= 0 {
		renderError(w, r, errors.New("newsletterId is required"), http.StatusBadRequest)
		return
	}

	if err := s.triage.Decide(r.Context(), req.NewsletterID, req.Decision); err != nil {
		lgr.Printf("[WARN] triage of %d failed: %v", req.NewsletterID, err)
		renderError(w, r, err, statusFor(err))
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"status": "ok"})
}

// getInterestsHandler returns reader interests
func (s *Server) getInterestsHandler(w http.ResponseWriter, r *http.Request) {
	interests, err := s.db.Interests(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get interests: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"interests": nonNil(interests)})
}

// putInterestsHandler replaces reader interests, between 3 and 8 topics
func (s *Server) putInterestsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Interests []string `json:"interests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}

	interests := cleanList(req.Interests)
	if len(interests) < minInterests || len(interests) > maxInterests {
		renderError(w, r, fmt.Errorf("select between %d and %d interests", minInterests, maxInterests), http.StatusBadRequest)
		return
	}

	if err := s.db.SetInterests(r.Context(), interests); err != nil {
		lgr.Printf("[ERROR] failed to save interests: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"interests": interests})
}

// getPreferencesHandler returns selected mailbox labels
func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	labels, err := s.db.Labels(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get labels: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"labels": nonNil(labels)})
}

// patchPreferencesHandler updates selected mailbox labels
func (s *Server) patchPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Labels *[]string `json:"labels"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if req.Labels == nil {
		renderError(w, r, errors.New("labels are required"), http.StatusBadRequest)
		return
	}

	labels := cleanList(*req.Labels)
	if err := s.db.SetLabels(r.Context(), labels); err != nil {
		lgr.Printf("[ERROR] failed to save labels: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"labels": labels})
}

// labelsHandler returns user labels from the mailbox
func (s *Server) labelsHandler(w http.ResponseWriter, r *http.Request) {
	labels, err := s.mailbox.ListLabels(r.Context())
	if err != nil {
		lgr.Printf("[WARN] failed to list mailbox labels: %v", err)
		renderError(w, r, err, statusFor(err))
		return
	}
	if labels == nil {
		labels = []mail.Label{}
	}
	renderJSON(w, r, http.StatusOK, labels)
}

// ingest pulls new mail before listing, failures only logged
func (s *Server) ingest(r *http.Request) {
	n, err := s.gazette.Ingest(r.Context())
	switch {
	case errors.Is(err, mail.ErrNotConfigured):
		lgr.Printf("[DEBUG] mailbox not configured, listing stored newsletters")
	case err != nil:
		lgr.Printf("[WARN] failed to ingest newsletters: %v", err)
	case n > 0:
		lgr.Printf("[INFO] ingested %d new newsletters", n)
	}
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, mail.ErrNotConfigured):
		return http.StatusUnauthorized
	case errors.Is(err, gazette.ErrNothingToProcess), errors.Is(err, gazette.ErrInvalidDecision):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// extendWriteDeadline lifts the server write timeout for long running handlers
func extendWriteDeadline(w http.ResponseWriter) {
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		lgr.Printf("[WARN] can't reset write deadline: %v", err)
	}
}

// cleanList trims values and drops empty and repeated ones
func cleanList(values []string) []string {
	res := make([]string, 0, len(values))
	seen := map[string]bool{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[strings.ToLower(v)] {
			continue
		}
		seen[strings.ToLower(v)] = true
		res = append(res, v)
	}
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}

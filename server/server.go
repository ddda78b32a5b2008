// Package server exposes the digest over a JSON API, a streaming endpoint and RSS
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/nldigest/pkg/domain"
	"github.com/umputun/nldigest/pkg/feed"
	"github.com/umputun/nldigest/pkg/gazette"
	"github.com/umputun/nldigest/pkg/mail"
)

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/gazette.go -pkg mocks -skip-ensure -fmt goimports . Gazette
//go:generate moq -out mocks/streamer.go -pkg mocks -skip-ensure -fmt goimports . Streamer
//go:generate moq -out mocks/triage.go -pkg mocks -skip-ensure -fmt goimports . Triage
//go:generate moq -out mocks/mailbox.go -pkg mocks -skip-ensure -fmt goimports . Mailbox

// Server represents HTTP server instance
type Server struct {
	cfg      Config
	db       Database
	gazette  Gazette
	streamer Streamer
	triage   Triage
	mailbox  Mailbox
	rss      *feed.Generator

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Config for the server
type Config struct {
	Listen  string
	Timeout time.Duration
	BaseURL string
	Version string
	Debug   bool
}

// Database interface for server reads and preference updates
type Database interface {
	GetEdition(ctx context.Context, id int64) (*domain.Edition, error)
	LatestEdition(ctx context.Context) (*domain.Edition, error)
	ListEditions(ctx context.Context, limit int) ([]domain.Edition, error)
	EditionArticles(ctx context.Context, editionID int64) ([]domain.ArticleView, error)
	UntriagedNewsletters(ctx context.Context, limit int) ([]domain.Newsletter, error)
	Labels(ctx context.Context) ([]string, error)
	SetLabels(ctx context.Context, labels []string) error
	Interests(ctx context.Context) ([]string, error)
	SetInterests(ctx context.Context, interests []string) error
	Stats(ctx context.Context) (domain.Stats, error)
}

// Gazette runs edition generation
type Gazette interface {
	Generate(ctx context.Context) (*gazette.Result, error)
	PrepareStream(ctx context.Context) (*gazette.Prepared, error)
	Ingest(ctx context.Context) (int, error)
}

// Streamer summarizes newsletters one by one into an edition
type Streamer interface {
	Stream(ctx context.Context, editionID int64, ids []int64, emit func(domain.StreamEvent)) error
}

// Triage records keep/skip decisions
type Triage interface {
	Decide(ctx context.Context, newsletterID int64, decision domain.Decision) error
	Deck(ctx context.Context) ([]domain.Newsletter, error)
}

// Mailbox lists mailbox labels
type Mailbox interface {
	ListLabels(ctx context.Context) ([]mail.Label, error)
}

// Deps groups the services used by handlers
type Deps struct {
	DB       Database
	Gazette  Gazette
	Streamer Streamer
	Triage   Triage
	Mailbox  Mailbox
}

// New initializes a new server instance
func New(cfg Config, deps Deps) *Server {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	s := &Server{
		cfg:      cfg,
		db:       deps.DB,
		gazette:  deps.Gazette,
		streamer: deps.Streamer,
		triage:   deps.Triage,
		mailbox:  deps.Mailbox,
		rss:      feed.NewGenerator(cfg.BaseURL),
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.cfg.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Timeout,
		ReadTimeout:       s.cfg.Timeout,
		WriteTimeout:      s.cfg.Timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the router, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("nldigest", "umputun", s.cfg.Version))
	s.router.Use(rest.Ping)
	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(api *routegroup.Bundle) {
		// long running handlers lift the write deadline, request logger's writer can't pass it through
		api.HandleFunc("POST /gazette", s.generateGazetteHandler)
		api.HandleFunc("GET /gazette/{id}/stream", s.streamHandler)

		r := s.logged(api)
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /stats", s.statsHandler)

		r.HandleFunc("POST /editions", s.prepareEditionHandler)
		r.HandleFunc("GET /editions", s.listEditionsHandler)
		r.HandleFunc("GET /editions/{id}", s.getEditionHandler)

		r.HandleFunc("GET /newsletters", s.listNewslettersHandler)
		r.HandleFunc("GET /newsletters/deck", s.deckHandler)
		r.HandleFunc("POST /newsletters/triage", s.triageHandler)

		r.HandleFunc("GET /interests", s.getInterestsHandler)
		r.HandleFunc("PUT /interests", s.putInterestsHandler)
		r.HandleFunc("GET /preferences", s.getPreferencesHandler)
		r.HandleFunc("PATCH /preferences", s.patchPreferencesHandler)
		r.HandleFunc("GET /labels", s.labelsHandler)
	})

	s.logged(s.router).HandleFunc("GET /rss/latest", s.rssHandler)
}

// logged returns a group of b with the request logger in debug mode
func (s *Server) logged(b *routegroup.Bundle) *routegroup.Bundle {
	if !s.cfg.Debug {
		return b.Group()
	}
	return b.With(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
}

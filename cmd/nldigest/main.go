package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/nldigest/pkg/config"
	"github.com/umputun/nldigest/pkg/domain"
	"github.com/umputun/nldigest/pkg/gazette"
	"github.com/umputun/nldigest/pkg/llm"
	"github.com/umputun/nldigest/pkg/mail"
	"github.com/umputun/nldigest/pkg/repository"
	"github.com/umputun/nldigest/pkg/scheduler"
	"github.com/umputun/nldigest/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

// mailbox is what the app needs from a mail provider
type mailbox interface {
	Fetch(ctx context.Context, label string, maxResults int) ([]domain.Newsletter, error)
	ListLabels(ctx context.Context) ([]mail.Label, error)
	MarkRead(ctx context.Context, messageID string) error
	AddLabel(ctx context.Context, messageID, label string) error
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)
	lgr.Printf("[INFO] starting nldigest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Print("[INFO] shutdown complete")
}

// run loads config, wires all components and blocks until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if err := config.VerifyAgainstEmbeddedSchema(cfg); err != nil {
		return fmt.Errorf("config doesn't match schema: %w", err)
	}

	// re-init logging with secrets masked
	setupLog(opts.Debug, secrets(cfg)...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	gen, err := llm.NewGenerator(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to make model client: %w", err)
	}
	lgr.Printf("[INFO] model provider %s, model %s", cfg.LLM.Provider, cfg.LLM.Model)

	mb, err := makeMailbox(ctx, cfg.Mail)
	if err != nil {
		return fmt.Errorf("failed to make mail client: %w", err)
	}

	generator := gazette.NewGenerator(gazette.Params{
		Newsletters:     repos.Newsletter,
		Editions:        repos.Edition,
		Preferences:     repos.Setting,
		Mail:            mb,
		Ranker:          llm.NewRanker(gen, cfg.LLM.Retry.RankRetries, cfg.LLM.Retry.Delay),
		PoolSize:        cfg.Gazette.PoolSize,
		ExcerptLength:   cfg.Gazette.ExcerptLength,
		MaxResults:      cfg.Mail.MaxResults,
		DefaultLabel:    cfg.Gazette.DefaultLabel,
		DefaultInterest: cfg.Gazette.DefaultInterest,
	})

	streamer := gazette.NewStreamer(gazette.StreamParams{
		Newsletters: repos.Newsletter,
		Editions:    repos.Edition,
		Summarizer:  llm.NewSummarizer(gen, cfg.LLM.Retry.SummaryRetries, cfg.LLM.Retry.Delay),
		BatchSize:   cfg.Gazette.BatchSize,
		BatchDelay:  cfg.Gazette.BatchDelay,
	})

	triage := &gazette.Triage{
		Newsletters: repos.Newsletter,
		Decisions:   &decisionStore{repos: repos},
		Mail:        mb,
		KeptLabel:   cfg.Mail.KeptLabel,
		DeckMin:     cfg.Triage.DeckMin,
		DeckMax:     cfg.Triage.DeckMax,
	}

	if cfg.Schedule.Enabled {
		params := scheduler.Params{
			Ingester:         generator,
			IngestInterval:   cfg.Schedule.IngestInterval,
			GenerateInterval: cfg.Schedule.GenerateInterval,
		}
		if cfg.Schedule.AutoGenerate {
			params.Generator = generator
		}
		sched := scheduler.NewScheduler(params)
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: cfg.Server.Timeout,
		BaseURL: cfg.Server.BaseURL,
		Version: revision,
		Debug:   opts.Debug,
	}, server.Deps{
		DB:       server.NewRepositoryAdapter(repos),
		Gazette:  generator,
		Streamer: streamer,
		Triage:   triage,
		Mailbox:  mb,
	})

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeMailbox returns gmail client when credentials are set, a disabled mailbox otherwise
func makeMailbox(ctx context.Context, cfg config.MailConfig) (mailbox, error) {
	if !cfg.Configured() {
		lgr.Printf("[WARN] gmail credentials are not set, mail operations disabled")
		return mail.Disabled{}, nil
	}
	return mail.NewGmail(ctx, cfg)
}

// decisionStore combines triage recording and untriaged listing from two repositories
type decisionStore struct {
	repos *repository.Repositories
}

func (d *decisionStore) Record(ctx context.Context, td domain.TriageDecision) error {
	return d.repos.Triage.Record(ctx, td)
}

func (d *decisionStore) Untriaged(ctx context.Context, limit int) ([]domain.Newsletter, error) {
	return d.repos.Newsletter.Untriaged(ctx, limit)
}

// secrets returns non-empty credentials to mask in logs
func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.LLM.APIKey, cfg.Mail.ClientSecret, cfg.Mail.AccessToken, cfg.Mail.RefreshToken} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !color.NoColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

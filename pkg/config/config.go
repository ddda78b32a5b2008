package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// LLM providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	LLM      LLMConfig      `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for ranking and summarization"`
	Mail     MailConfig     `yaml:"mail" json:"mail" jsonschema:"description=Gmail access configuration"`
	Gazette  GazetteConfig  `yaml:"gazette" json:"gazette" jsonschema:"description=Gazette generation settings"`
	Triage   TriageConfig   `yaml:"triage" json:"triage" jsonschema:"description=Triage deck settings"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Background ingestion and generation"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS links"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:nldigest.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// LLMConfig holds generative model settings
type LLMConfig struct {
	Provider    string        `yaml:"provider" json:"provider" jsonschema:"default=gemini,enum=gemini,enum=openai,description=Model provider"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (openai provider only)"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name used for ranking the gazette"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=8192,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=2m,description=Request timeout"`
	Retry       RetryConfig   `yaml:"retry" json:"retry" jsonschema:"description=Retry policy for transient provider failures"`
}

// RetryConfig holds retry settings for model calls
type RetryConfig struct {
	RankRetries    int           `yaml:"rank_retries" json:"rank_retries" jsonschema:"default=2,minimum=0,description=Retries for the gazette ranking call"`
	SummaryRetries int           `yaml:"summary_retries" json:"summary_retries" jsonschema:"default=3,minimum=0,description=Retries for per-newsletter summarization"`
	Delay          time.Duration `yaml:"delay" json:"delay" jsonschema:"default=10s,description=Base delay, multiplied by retry number"`
}

// MailConfig holds gmail oauth settings
type MailConfig struct {
	ClientID     string `yaml:"client_id" json:"client_id" jsonschema:"description=Google OAuth client id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret" jsonschema:"description=Google OAuth client secret"`
	AccessToken  string `yaml:"access_token" json:"access_token" jsonschema:"description=OAuth access token"`
	RefreshToken string `yaml:"refresh_token" json:"refresh_token" jsonschema:"description=OAuth refresh token"`
	MaxResults   int    `yaml:"max_results" json:"max_results" jsonschema:"default=50,minimum=1,description=Maximum messages fetched per label"`
	KeptLabel    string `yaml:"kept_label" json:"kept_label" jsonschema:"default=nl-dygest/kept,description=Label applied to kept newsletters"`
}

// Configured reports whether enough credentials are present to talk to gmail
func (m MailConfig) Configured() bool {
	return m.ClientID != "" && m.ClientSecret != "" && (m.AccessToken != "" || m.RefreshToken != "")
}

// GazetteConfig holds edition generation settings
type GazetteConfig struct {
	PoolSize        int           `yaml:"pool_size" json:"pool_size" jsonschema:"default=30,minimum=1,description=Maximum candidates sent to the ranking prompt"`
	ExcerptLength   int           `yaml:"excerpt_length" json:"excerpt_length" jsonschema:"default=2000,minimum=1,description=Maximum characters of content per candidate"`
	BatchSize       int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=3,minimum=1,description=Newsletters summarized concurrently in streaming mode"`
	BatchDelay      time.Duration `yaml:"batch_delay" json:"batch_delay" jsonschema:"default=500ms,description=Pause between streaming batches"`
	DefaultLabel    string        `yaml:"default_label" json:"default_label" jsonschema:"default=Newsletters,description=Mail label used when none is selected"`
	DefaultInterest string        `yaml:"default_interest" json:"default_interest" jsonschema:"default=General,description=Interest used when none is set"`
}

// TriageConfig holds triage deck settings
type TriageConfig struct {
	DeckMin int `yaml:"deck_min" json:"deck_min" jsonschema:"default=5,minimum=1,description=Minimum newsletters in a triage deck"`
	DeckMax int `yaml:"deck_max" json:"deck_max" jsonschema:"default=10,minimum=1,description=Maximum newsletters in a triage deck"`
}

// ScheduleConfig holds background job settings
type ScheduleConfig struct {
	Enabled          bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Run background jobs"`
	IngestInterval   time.Duration `yaml:"ingest_interval" json:"ingest_interval" jsonschema:"default=30m,description=How often to pull new mail"`
	AutoGenerate     bool          `yaml:"auto_generate" json:"auto_generate" jsonschema:"default=false,description=Generate the daily gazette in background"`
	GenerateInterval time.Duration `yaml:"generate_interval" json:"generate_interval" jsonschema:"default=1h,description=How often to check for a missing daily gazette"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults applied, used when no config file is given
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:nldigest.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// llm
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = ProviderGemini
	}
	if cfg.LLM.Model == "" {
		switch cfg.LLM.Provider {
		case ProviderOpenAI:
			cfg.LLM.Model = "gpt-4o-mini"
		default:
			cfg.LLM.Model = "gemini-2.5-flash"
		}
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 8192
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 2 * time.Minute
	}
	if cfg.LLM.Retry.RankRetries == 0 {
		cfg.LLM.Retry.RankRetries = 2
	}
	if cfg.LLM.Retry.SummaryRetries == 0 {
		cfg.LLM.Retry.SummaryRetries = 3
	}
	if cfg.LLM.Retry.Delay == 0 {
		cfg.LLM.Retry.Delay = 10 * time.Second
	}

	// mail
	if cfg.Mail.MaxResults == 0 {
		cfg.Mail.MaxResults = 50
	}
	if cfg.Mail.KeptLabel == "" {
		cfg.Mail.KeptLabel = "nl-dygest/kept"
	}

	// gazette
	if cfg.Gazette.PoolSize == 0 {
		cfg.Gazette.PoolSize = 30
	}
	if cfg.Gazette.ExcerptLength == 0 {
		cfg.Gazette.ExcerptLength = 2000
	}
	if cfg.Gazette.BatchSize == 0 {
		cfg.Gazette.BatchSize = 3
	}
	if cfg.Gazette.BatchDelay == 0 {
		cfg.Gazette.BatchDelay = 500 * time.Millisecond
	}
	if cfg.Gazette.DefaultLabel == "" {
		cfg.Gazette.DefaultLabel = "Newsletters"
	}
	if cfg.Gazette.DefaultInterest == "" {
		cfg.Gazette.DefaultInterest = "General"
	}

	// triage
	if cfg.Triage.DeckMin == 0 {
		cfg.Triage.DeckMin = 5
	}
	if cfg.Triage.DeckMax == 0 {
		cfg.Triage.DeckMax = 10
	}

	// schedule
	if cfg.Schedule.IngestInterval == 0 {
		cfg.Schedule.IngestInterval = 30 * time.Minute
	}
	if cfg.Schedule.GenerateInterval == 0 {
		cfg.Schedule.GenerateInterval = time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate LLM config
	if cfg.LLM.Provider != ProviderGemini && cfg.LLM.Provider != ProviderOpenAI {
		return fmt.Errorf("llm.provider must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, cfg.LLM.Provider)
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.Retry.RankRetries < 0 || cfg.LLM.Retry.SummaryRetries < 0 {
		return fmt.Errorf("llm.retry counts must be non-negative")
	}
	if cfg.LLM.Retry.Delay < 0 {
		return fmt.Errorf("llm.retry.delay must be non-negative")
	}

	// validate gazette config
	if cfg.Gazette.PoolSize < 1 {
		return fmt.Errorf("gazette.pool_size must be at least 1")
	}
	if cfg.Gazette.ExcerptLength < 1 {
		return fmt.Errorf("gazette.excerpt_length must be at least 1")
	}
	if cfg.Gazette.BatchSize < 1 {
		return fmt.Errorf("gazette.batch_size must be at least 1")
	}
	if cfg.Gazette.BatchDelay < 0 {
		return fmt.Errorf("gazette.batch_delay must be non-negative")
	}

	// validate triage config
	if cfg.Triage.DeckMin < 1 || cfg.Triage.DeckMax < cfg.Triage.DeckMin {
		return fmt.Errorf("triage deck bounds invalid: min=%d, max=%d", cfg.Triage.DeckMin, cfg.Triage.DeckMax)
	}

	// validate mail config
	if cfg.Mail.MaxResults < 1 || cfg.Mail.MaxResults > 500 {
		return fmt.Errorf("mail.max_results must be between 1 and 500")
	}

	// validate schedule config
	if cfg.Schedule.IngestInterval < time.Minute || cfg.Schedule.GenerateInterval < time.Minute {
		return fmt.Errorf("schedule intervals must be at least 1 minute")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

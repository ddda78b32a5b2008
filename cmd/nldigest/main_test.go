package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nldigest/pkg/config"
	"github.com/umputun/nldigest/pkg/mail"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	t.Setenv("DB_PATH", t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: "testdata/test_config.yml"}) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18765/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	// no edition yet
	resp, err := http.Get("http://127.0.0.1:18765/rss/latest")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// mailbox is not configured in test config
	resp, err = http.Post("http://127.0.0.1:18765/api/gazette", "application/json", http.NoBody)
	require.NoError(t, err)
	var errResp map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, errResp["error"], "not authenticated")

	resp, err = http.Get("http://127.0.0.1:18765/api/stats")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server shutdown timeout")
	}
}

func TestMakeMailbox(t *testing.T) {
	mb, err := makeMailbox(context.Background(), config.MailConfig{})
	require.NoError(t, err)
	assert.IsType(t, mail.Disabled{}, mb)

	mb, err = makeMailbox(context.Background(), config.MailConfig{ClientID: "id", ClientSecret: "secret", RefreshToken: "token"})
	require.NoError(t, err)
	assert.IsType(t, &mail.Gmail{}, mb)
}

func TestSecrets(t *testing.T) {
	cfg := config.Default()
	assert.Empty(t, secrets(cfg))

	cfg.LLM.APIKey = "key"
	cfg.Mail.RefreshToken = "refresh"
	assert.Equal(t, []string{"key", "refresh"}, secrets(cfg))
}

func TestSetupLog(t *testing.T) {
	defer lgr.Setup()
	t.Run("debug", func(t *testing.T) {
		setupLog(true)
	})
	t.Run("no debug", func(t *testing.T) {
		setupLog(false)
	})
	t.Run("with secrets", func(t *testing.T) {
		setupLog(true, "secret1", "secret2")
	})
}

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDocument = `Chronic kidney disease is a gradual loss of kidney function.
Your kidneys filter wastes and excess fluids from your blood.
Signs and symptoms develop over time if kidney damage progresses slowly.`

func writeTestConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	doc := filepath.Join(dir, "ckd.txt")
	require.NoError(t, os.WriteFile(doc, []byte(testDocument), 0o644))
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "document:\n  path: " + doc + "\n" + extra
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	return cfgPath
}

func runAsk(t *testing.T, cfgPath string, args ...string) string {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath, "ask"}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestAskRetrieval(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	out := runAsk(t, cfgPath, "--kind", "how", "do", "kidneys", "filter", "fluids")
	assert.Equal(t, "[retrieval] Your kidneys filter wastes and excess fluids from your blood.\n", out)
}

// Both sentences score the same for this query, so document order decides.
func TestAskCombinesRankedSentences(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	out := runAsk(t, cfgPath, "kidney", "damage")
	assert.Equal(t, "Chronic kidney disease is a gradual loss of kidney function. Signs and symptoms develop over time if kidney damage progresses slowly.\n", out)
}

func TestAskPromptAndFallback(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	assert.Equal(t, "My name is Visab Bot.\n", runAsk(t, cfgPath, "what", "is", "your", "name"))
	assert.Equal(t, "I apologize, I don't understand. Can you please ask something else?\n", runAsk(t, cfgPath, "banana", "spaceship"))
}

func TestNewAppRejectsUnknownVectorizer(t *testing.T) {
	cfg, err := loadConfig(writeTestConfig(t, "ranker:\n  vectorizer: bert\n"))
	require.NoError(t, err)
	_, err = newApp(cfg, zap.NewNop())
	assert.ErrorContains(t, err, "unknown vectorizer")
}

func TestNewAppMissingDocument(t *testing.T) {
	cfg, err := loadConfig(writeTestConfig(t, ""))
	require.NoError(t, err)
	cfg.Document.Path = filepath.Join(t.TempDir(), "missing.txt")
	_, err = newApp(cfg, zap.NewNop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchDocumentDisabled(t *testing.T) {
	cfg, err := loadConfig(writeTestConfig(t, ""))
	require.NoError(t, err)
	a, err := newApp(cfg, zap.NewNop())
	require.NoError(t, err)
	stop, err := a.watchDocument()
	require.NoError(t, err)
	stop()
	assert.NotEmpty(t, a.summary())
}

func TestNewAppFromURLDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><head><title>CKD</title></head><body><article><p>" +
			testDocument + "</p></article></body></html>"))
	}))
	defer srv.Close()

	cfg, err := loadConfig(writeTestConfig(t, "ranker:\n  vectorizer: count\n"))
	require.NoError(t, err)
	cfg.Document.URL = srv.URL
	cfg.Document.Path = filepath.Join(t.TempDir(), "missing.txt")
	cfg.Document.Watch = true

	a, err := newApp(cfg, zap.NewNop())
	require.NoError(t, err)
	reply := a.bot.Answer("how do kidneys filter fluids")
	assert.Equal(t, "Your kidneys filter wastes and excess fluids from your blood.", reply.Text)

	stop, err := a.watchDocument()
	require.NoError(t, err)
	stop()
}

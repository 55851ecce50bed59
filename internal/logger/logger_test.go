package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visab.log")
	log, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)
	log.Info("corpus loaded")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"message":"corpus loaded"`))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestNewFileOnlyEmptyPathIsNop(t *testing.T) {
	log, err := NewFileOnly("", "info")
	require.NoError(t, err)
	log.Info("dropped")
}

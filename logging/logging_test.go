package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesRotatedFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "server.log")

	logger, err := New("production", filename)
	require.NoError(t, err)

	logger.Info("meal created")
	_ = logger.Sync()

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"meal created"`)
}

func TestNewWithoutFile(t *testing.T) {
	logger, err := New("development", "")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRejectsBadConfigBeforeOpeningLog(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "eventgate.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"gate": {"alpha": 90}}`), 0o644))
	logPath := filepath.Join(dir, "tui.log")

	_, logFile, err := setup(configPath, logPath)
	require.Error(t, err)
	assert.Nil(t, logFile)
	assert.Contains(t, err.Error(), "failed to load config")

	_, statErr := os.Stat(logPath)
	assert.True(t, os.IsNotExist(statErr), "log file must not be created for a bad config")
}

func TestSetupOpensLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "tui.log")

	cfg, logFile, err := setup(filepath.Join(dir, "missing.json"), logPath)
	require.NoError(t, err)
	defer logFile.Close()

	assert.Equal(t, 1000, cfg.Window.Width)
	assert.FileExists(t, logPath)
}

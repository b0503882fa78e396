package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/eventgate/internal/core/gate"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eventgate.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	g, err := cfg.NewGate()
	require.NoError(t, err)
	assert.Equal(t, "<x=500, y=250, width=200, alpha=0>", g.String())
	assert.Equal(t, 10, cfg.NewTrail().Cap())
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"window": {"title": "gates"},
		"gate": {"alpha": 30},
		"overlay": {"draw_grid": false, "grid_points": 25},
		"snapshot": {"unique": true}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "gates", cfg.Window.Title)
	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, 30, cfg.Gate.Alpha)
	assert.Equal(t, 500, cfg.Gate.X)
	assert.False(t, cfg.Overlay.DrawGrid)
	assert.True(t, cfg.Overlay.DrawShadow)
	assert.Equal(t, 25, cfg.Overlay.GridPoints)
	assert.True(t, cfg.Snapshot.Unique)
	assert.Equal(t, "eventgate.png", cfg.Snapshot.Path)
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"window": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadConfigRejectsOutOfRangeAlpha(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"gate": {"alpha": 90}}`))
	require.Error(t, err)

	var rangeErr *gate.OutOfRangeError
	require.True(t, errors.As(err, &rangeErr), "expected OutOfRangeError in %v", err)
	assert.Equal(t, 90, rangeErr.Value)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Width = 0
	cfg.Trail.Capacity = 0
	cfg.Overlay.GridPoints = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "trail capacity")
	assert.Contains(t, err.Error(), "grid_points")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Default(t *testing.T) {
	t.Setenv("TRACKER_DEBUG", "")

	cfg, err := New("")
	require.NoError(t, err)

	assert.False(t, cfg.Tracker.Debug)
	assert.Equal(t, []Account{
		{Name: "P1", Rating: 1000, Kind: "standard"},
		{Name: "P2", Rating: 1200, Kind: "reduced_penalty"},
	}, cfg.Scenario.Accounts)
	require.Len(t, cfg.Scenario.Games, 6)
	assert.Equal(t, Game{Player: "P1", Opponent: "P2", Result: "win", Mode: "standard"}, cfg.Scenario.Games[0])
	assert.Equal(t, Game{Player: "P2", Opponent: "P1", Result: "lose", Mode: "solo"}, cfg.Scenario.Games[5])
}

func TestNew_File(t *testing.T) {
	t.Setenv("TRACKER_DEBUG", "")
	path := filepath.Join(t.TempDir(), "tracker.toml")
	data := `
[tracker]
debug_mode = true

[[scenario.accounts]]
name = "solo player"
rating = 50
kind = "specific"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := New(path)
	require.NoError(t, err)
	assert.True(t, cfg.Tracker.Debug)
	assert.Equal(t, []Account{{Name: "solo player", Rating: 50, Kind: "specific"}}, cfg.Scenario.Accounts)
	assert.Empty(t, cfg.Scenario.Games)
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("TRACKER_DEBUG", "true")
	cfg, err := New("")
	require.NoError(t, err)
	assert.True(t, cfg.Tracker.Debug)

	t.Setenv("TRACKER_DEBUG", "maybe")
	_, err = New("")
	assert.Error(t, err)
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

package main

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/invaderers/internal/application/replay"
	"github.com/younwookim/invaderers/internal/application/system"
	"github.com/younwookim/invaderers/internal/infrastructure/config"
)

// loadEmbeddedConfig loads the defaults the binary ships with
func loadEmbeddedConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)
	cfg, err := config.NewFSLoader(fsys, "configs").LoadGame()
	require.NoError(t, err)
	return cfg
}

func writeReplay(t *testing.T, data replay.ReplayData) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "replay.json")
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestEmbeddedConfig(t *testing.T) {
	cfg := loadEmbeddedConfig(t)

	assert.Equal(t, "Invaderers", cfg.Display.Title)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 8, cfg.Audio.Sources)
}

func TestRunReplay_Idle(t *testing.T) {
	cfg := loadEmbeddedConfig(t)
	path := writeReplay(t, replay.CreateTestReplayData(30, system.InputState{}))

	var out bytes.Buffer
	require.NoError(t, runReplay(cfg, path, &out))

	assert.Equal(t,
		"seed: 12345\nframes: 30/30\nscore: 0\ntime: 1\nlives: 1\nboss: 5\noutcome: unfinished\n",
		out.String())
}

func TestRunReplay_Deterministic(t *testing.T) {
	cfg := loadEmbeddedConfig(t)

	data := replay.CreateTestReplayData(2400, system.InputState{Fire: true})
	for i := range data.Frames {
		data.Frames[i].L = (i/60)%2 == 0
		data.Frames[i].R = !data.Frames[i].L
	}
	path := writeReplay(t, data)

	var first, second bytes.Buffer
	require.NoError(t, runReplay(cfg, path, &first))
	require.NoError(t, runReplay(cfg, path, &second))

	assert.Equal(t, first.String(), second.String())
}

func TestRunReplay_MissingFile(t *testing.T) {
	cfg := loadEmbeddedConfig(t)

	err := runReplay(cfg, filepath.Join(t.TempDir(), "missing.json"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunReplay_WrongVersion(t *testing.T) {
	cfg := loadEmbeddedConfig(t)
	data := replay.CreateTestReplayData(5, system.InputState{})
	data.Version = "0.1"

	err := runReplay(cfg, writeReplay(t, data), &bytes.Buffer{})
	assert.ErrorContains(t, err, "unsupported replay version")
}

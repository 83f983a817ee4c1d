package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-platformer/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.env")
	require.NoError(t, os.WriteFile(path, []byte("WINDOW_WIDTH=640\nSCENE_PATH=scenes/test.json\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("WINDOW_WIDTH", "800")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 540, cfg.WindowHeight)
	assert.Equal(t, "scenes/test.json", cfg.ScenePath)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.TPS = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Volume = 2
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.LogLevel = "loud"
	assert.Error(t, bad.Validate())
}

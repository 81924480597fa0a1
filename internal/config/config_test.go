package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Defaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, "frames", cfg.OutputDir)
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, 512, cfg.RenderSize)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 30, cfg.FPS)
	// One walk period at 30 fps: 30 · 0.625 rounds to 19 frames.
	assert.Equal(t, 19, cfg.Frames)
	assert.Equal(t, 16, cfg.Stacks)
	assert.Equal(t, 24, cfg.Slices)
	assert.Greater(t, cfg.Workers, 0)
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	cfg := Config{OutputDir: "from-file", RenderSize: 256, FPS: 24}
	cfg.Resolve(Flags{OutputDir: "from-flag", Size: 128, Workers: 3})

	assert.Equal(t, "from-flag", cfg.OutputDir)
	assert.Equal(t, 128, cfg.RenderSize)
	assert.Equal(t, 24, cfg.FPS, "file value survives when no flag is set")
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"render_size": 640, "format": "tga"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.RenderSize)
	assert.Equal(t, "tga", cfg.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 1000, cfg.Rabbit.Window.Width)
	assert.Equal(t, 1280, cfg.Crate.Window.Width)
	assert.Equal(t, 800, cfg.Crate.Window.Height)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
hot_reload: true
controls:
  move_speed: 0.01
crate:
  window:
    width: 640
    height: 480
    title: small
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.HotReload)
	assert.Equal(t, float32(0.01), cfg.Controls.MoveSpeed)
	assert.Equal(t, float32(0.05), cfg.Controls.LookSensitivity)
	assert.Equal(t, 640, cfg.Crate.Window.Width)
	assert.Equal(t, "small", cfg.Crate.Window.Title)
	assert.Equal(t, 1000, cfg.Rabbit.Window.Height)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("crate: [unterminated"), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "parse config")

	size := filepath.Join(dir, "size.yaml")
	require.NoError(t, os.WriteFile(size, []byte("rabbit:\n  window:\n    width: 0\n"), 0o644))
	_, err = Load(size)
	assert.ErrorContains(t, err, "rabbit window size")

	level := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(level, []byte("log_level: loud\n"), 0o644))
	_, err = Load(level)
	assert.ErrorContains(t, err, "log_level")
}

func TestPaths(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("assets", "shaders", "crate", "vertex.glsl"), cfg.ShaderPath("crate", "vertex.glsl"))
	assert.Equal(t, filepath.Join("assets", "gfx", "crate"), cfg.MaterialBase())
}

func TestLoadDefaultHonoursEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frame_time_ms: 10\n"), 0o644))
	t.Setenv(EnvPath, path)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, float32(10), cfg.FrameTimeMs)
}

func TestShippedAssetsMatchDefaults(t *testing.T) {
	cfg := Default()
	cfg.Assets.Root = filepath.Join("..", cfg.Assets.Root)

	for _, program := range []string{"rabbit", "lit", "unlit"} {
		for _, stage := range []string{"vertex.glsl", "fragment.glsl"} {
			assert.FileExists(t, cfg.ShaderPath(program, stage))
		}
	}
	for _, suffix := range []string{"_diffuse.", "_specular."} {
		assert.FileExists(t, cfg.MaterialBase()+suffix+cfg.Assets.TextureExt)
	}

	example, err := Load(filepath.Join("..", "lab.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Crate, example.Crate)
	assert.Equal(t, Default().Controls, example.Controls)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crate:\n  window:\n    resizable: true\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "resizable")

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	cfg, err := Load(empty)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

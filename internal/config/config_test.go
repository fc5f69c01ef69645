package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themed-todo/internal/theme"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "themed-todo.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, theme.Light, cfg.Theme())
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
theme = "dark"
assets_dir = "/opt/todo/assets"
window_width = 800
watch_assets = false
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, theme.Dark, cfg.Theme())
	assert.Equal(t, "/opt/todo/assets", cfg.AssetsDir)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 570, cfg.WindowHeight)
	assert.False(t, cfg.WatchAssets)
	assert.Equal(t, Default().Placeholder, cfg.Placeholder)
}

func TestLoadFile_InvalidTOML(t *testing.T) {
	path := writeConfig(t, `theme = `)

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	t.Setenv(PathEnv, "")
	require.NoError(t, os.Unsetenv(PathEnv))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	t.Setenv(PathEnv, filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvOverridesLogLevel(t *testing.T) {
	t.Setenv(PathEnv, writeConfig(t, `log_level = "warn"`))
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv("LOG_LEVEL", "error")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.InitialTheme = "sepia"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.WindowWidth = 100
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.AssetsDir = ""
	assert.Error(t, cfg.Validate())
}

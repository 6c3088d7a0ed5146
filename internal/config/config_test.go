package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFileEnvAndOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
theme: neon
sample: Online Retail
plot_width: 61
`), 0o644))
	t.Setenv("QUADRANT_PLOT_HEIGHT", "31")

	cfg, err := Load(dir, map[string]any{KeyTheme: "mono"})
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "Online Retail", cfg.Sample)
	assert.Equal(t, 61, cfg.PlotWidth)
	assert.Equal(t, 31, cfg.PlotHeight)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		wantErr   error
	}{
		{"theme", map[string]any{KeyTheme: "rainbow"}, ErrUnknownTheme},
		{"color", map[string]any{KeyColor: "sometimes"}, ErrUnknownColorMode},
		{"plot", map[string]any{KeyPlotWidth: 5}, ErrPlotSize},
		{"log level", map[string]any{KeyLogLevel: "chatty"}, ErrUnknownLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(t.TempDir(), tt.overrides)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme: [unterminated"), 0o644))
	_, err := Load(dir, nil)
	assert.ErrorContains(t, err, "read config")
}

func TestResolveDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", "")

	orig := platformDir.homeDir
	t.Cleanup(func() { platformDir.homeDir = orig })
	platformDir.homeDir = func() (string, error) { return "/home/tester", nil }

	got, err := ResolveDir("/explicit")
	require.NoError(t, err)
	assert.Equal(t, "/explicit", got)

	got, err = ResolveDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "quadrant"), got)

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	got, err = ResolveDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "quadrant"), got)

	t.Setenv(EnvConfigDir, "/env")
	got, err = ResolveDir("")
	require.NoError(t, err)
	assert.Equal(t, "/env", got)

	platformDir.homeDir = func() (string, error) { return "", errors.New("no home") }
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", "")
	_, err = ResolveDir("")
	assert.Error(t, err)
}

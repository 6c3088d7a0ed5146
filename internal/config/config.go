// Package config loads read-only settings for the quadrant CLI.
// Precedence: explicit overrides > QUADRANT_* env > config.yaml > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// EnvPrefix prefixes every environment override, e.g. QUADRANT_THEME.
	EnvPrefix = "QUADRANT"
	// EnvConfigDir overrides the config directory.
	EnvConfigDir = "QUADRANT_CONFIG_DIR"
)

// Config keys.
const (
	KeyTheme      = "theme"
	KeySample     = "sample"
	KeyColor      = "color"
	KeyLogLevel   = "log_level"
	KeyLogFile    = "log_file"
	KeyPlotWidth  = "plot_width"
	KeyPlotHeight = "plot_height"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrUnknownColorMode = errors.New("unknown color mode")
	ErrPlotSize         = errors.New("plot size too small")
	ErrUnknownLogLevel  = errors.New("unknown log level")
)

// Minimum plot canvas, in terminal cells.
const (
	MinPlotWidth  = 21
	MinPlotHeight = 11
)

// Config is the resolved configuration.
type Config struct {
	Theme      string `mapstructure:"theme"`
	Sample     string `mapstructure:"sample"`
	Color      string `mapstructure:"color"`
	LogLevel   string `mapstructure:"log_level"`
	LogFile    string `mapstructure:"log_file"`
	PlotWidth  int    `mapstructure:"plot_width"`
	PlotHeight int    `mapstructure:"plot_height"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Theme:      "classic",
		Color:      ColorAuto,
		LogLevel:   "warn",
		PlotWidth:  41,
		PlotHeight: 21,
	}
}

var knownThemes = map[string]bool{"classic": true, "neon": true, "mono": true}

// Validate checks enumerated values and sizes.
func (c Config) Validate() error {
	if !knownThemes[strings.ToLower(c.Theme)] {
		return fmt.Errorf("%w %q (want classic, neon or mono)", ErrUnknownTheme, c.Theme)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w %q (want auto, always or never)", ErrUnknownColorMode, c.Color)
	}
	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w %q (want debug, info, warn or error)", ErrUnknownLogLevel, c.LogLevel)
		}
	}
	if c.PlotWidth < MinPlotWidth || c.PlotHeight < MinPlotHeight {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrPlotSize, c.PlotWidth, c.PlotHeight, MinPlotWidth, MinPlotHeight)
	}
	return nil
}

// Load reads config.yaml from configDir (resolved with ResolveDir when
// empty), applies env overrides and then overrides, and validates. A
// missing config file is not an error.
func Load(configDir string, overrides map[string]any) (Config, error) {
	dir, err := ResolveDir(configDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeySample, d.Sample)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyPlotWidth, d.PlotWidth)
	v.SetDefault(KeyPlotHeight, d.PlotHeight)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	for k, val := range overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// platformDir can be swapped in tests.
var platformDir = struct {
	homeDir func() (string, error)
}{
	homeDir: os.UserHomeDir,
}

// ResolveDir picks the config directory: flag value, then
// QUADRANT_CONFIG_DIR, then $XDG_CONFIG_HOME/quadrant, then
// ~/.config/quadrant.
func ResolveDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return env, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quadrant"), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "quadrant"), nil
}

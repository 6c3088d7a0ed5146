// Package logging builds the zap logger shared by the CLI and the store.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects level and destination.
type Options struct {
	Level   string // debug, info, warn or error
	File    string // empty means stderr
	Verbose bool   // forces debug
}

// New builds a production-style JSON logger.
func New(opt Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	level := zapcore.WarnLevel
	if opt.Level != "" {
		if err := level.UnmarshalText([]byte(opt.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", opt.Level, err)
		}
	}
	if opt.Verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	out := "stderr"
	if opt.File != "" {
		out = opt.File
	}
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{out}
	cfg.Sampling = nil

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// ForTUI returns a logger that never writes to the terminal: a file logger
// when a file is configured, otherwise a no-op.
func ForTUI(opt Options) (*zap.Logger, error) {
	if opt.File == "" {
		return zap.NewNop(), nil
	}
	return New(opt)
}

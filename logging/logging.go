// Package logging builds the zap logger shared by the folio components.
//
// The terminal belongs to the UI, so logs always go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects where and how much to log.
type Config struct {
	Enabled bool
	Level   string // debug, info, warn, error
	File    string
}

// New returns a JSON file logger, or a no-op logger when logging is disabled.
func New(cfg Config) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}
	if cfg.File == "" {
		return nil, fmt.Errorf("logging: no file configured")
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("logging: create dir: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{cfg.File}
	config.ErrorOutputPaths = []string{cfg.File}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return l, fmt.Errorf("logging: bad level %q: %w", s, err)
	}
	return l, nil
}

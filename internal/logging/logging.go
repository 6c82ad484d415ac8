// Package logging builds the zap logger used across portfolio-terminal.
package logging

import (
	"fmt"

	"github.com/nassimmaaoui/portfolio-terminal/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger for cfg. Disabled logging yields a no-op logger so
// callers never need a nil check.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Path != "" {
		zcfg.OutputPaths = []string{cfg.Path}
		zcfg.ErrorOutputPaths = []string{cfg.Path}
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

package config

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a zap logger for level. "debug" selects the development
// encoder; every other level uses the production JSON encoder.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", level, err)
	}

	zc := zap.NewProductionConfig()
	if level == "debug" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = lvl

	return zc.Build()
}

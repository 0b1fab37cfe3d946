// Package observability builds the application logger.
package observability

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/heroforge/internal/config"
)

// NewLogger creates a structured logger writing to stderr, so that stdout stays
// free for reported lines.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	return NewLoggerTo(cfg, zapcore.Lock(os.Stderr))
}

// NewLoggerTo is NewLogger with an explicit destination.
//
// Precondition: ws must be non-nil.
func NewLoggerTo(cfg config.LoggingConfig, ws zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var (
		encCfg zapcore.EncoderConfig
		enc    zapcore.Encoder
		opts   []zap.Option
	)
	switch cfg.Format {
	case "json":
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
		opts = append(opts, zap.Development(), zap.AddCaller())
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, ws, zap.NewAtomicLevelAt(level))
	return zap.New(core, opts...), nil
}

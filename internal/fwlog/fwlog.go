// Package fwlog builds the zap loggers shared by the binaries and adapts
// them to the Temporal SDK logger interface.
package fwlog

import (
	"fmt"

	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger at the given level ("debug", "info", ...).
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

type temporalLogger struct {
	s *zap.SugaredLogger
}

var (
	_ log.Logger     = (*temporalLogger)(nil)
	_ log.WithLogger = (*temporalLogger)(nil)
)

// Temporal wraps l so it can be passed as client.Options.Logger.
func Temporal(l *zap.Logger) log.Logger {
	return &temporalLogger{s: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *temporalLogger) Debug(msg string, keyvals ...interface{}) {
	l.s.Debugw(msg, keyvals...)
}

func (l *temporalLogger) Info(msg string, keyvals ...interface{}) {
	l.s.Infow(msg, keyvals...)
}

func (l *temporalLogger) Warn(msg string, keyvals ...interface{}) {
	l.s.Warnw(msg, keyvals...)
}

func (l *temporalLogger) Error(msg string, keyvals ...interface{}) {
	l.s.Errorw(msg, keyvals...)
}

func (l *temporalLogger) With(keyvals ...interface{}) log.Logger {
	return &temporalLogger{s: l.s.With(keyvals...)}
}

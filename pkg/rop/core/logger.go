package core

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

var defaultLogger atomic.Pointer[zap.Logger]

func init() {
	defaultLogger.Store(zap.NewNop())
}

// SetLogger installs the process-wide diagnostics logger. A nil logger
// restores the no-op default.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaultLogger.Store(logger)
}

func Logger() *zap.Logger {
	return defaultLogger.Load()
}

// WithLogger overrides the diagnostics logger for everything run under ctx.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

func LoggerFrom(ctx context.Context) *zap.Logger {
	logger, ok := ctx.Value(LoggerOptionKey).(*zap.Logger)
	if ok && logger != nil {
		return logger
	}
	return Logger()
}

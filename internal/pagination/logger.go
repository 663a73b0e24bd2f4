// internal/pagination/logger.go
package pagination

import (
	"go.uber.org/zap"
)

// Logger receives the diagnostics emitted while building a range.
type Logger interface {
	Warn(msg string)
	Error(msg string, err error)
}

type zapLogger struct {
	logger *zap.Logger
}

// NewZapLogger adapts a zap logger. A nil logger discards everything.
func NewZapLogger(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger.Named("pagination")}
}

func (l *zapLogger) Warn(msg string) {
	l.logger.Warn(msg)
}

func (l *zapLogger) Error(msg string, err error) {
	l.logger.Error(msg, zap.Error(err))
}

// stderrLogger is used when no logger is injected.
func stderrLogger() Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return NewZapLogger(nil)
	}
	return NewZapLogger(logger)
}

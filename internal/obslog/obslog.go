// Package obslog provides debug-only structured logging for the engine's
// internal consistency tracing. It is never the transport's event sink —
// engine Events reach observers through the log(&Event) transport primitive,
// independent of this package.
package obslog

import (
	"os"

	"go.uber.org/zap"
)

var globalLogger *zap.Logger

// Init initializes the global logger. Formatting switches on CARDGAME_ENV;
// level defaults to "info" when logLevel is nil.
func Init(logLevel *string) error {
	var err error

	env := os.Getenv("CARDGAME_ENV")
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	appliedLogLevel := "info"
	if logLevel != nil {
		appliedLogLevel = *logLevel
	}

	switch appliedLogLevel {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	globalLogger, err = config.Build()
	if err != nil {
		return err
	}

	return nil
}

// Get returns the global logger, falling back to a development logger if
// Init was never called.
func Get() *zap.Logger {
	if globalLogger == nil {
		globalLogger, _ = zap.NewDevelopment()
	}
	return globalLogger
}

// Sync flushes the logger.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// WithGameContext returns a logger annotated with the player this trace
// concerns, used while tracing MoveCard.
func WithGameContext(player int) *zap.Logger {
	return Get().With(zap.Int("player", player))
}

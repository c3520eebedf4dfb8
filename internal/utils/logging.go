package utils

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It defaults to a no-op logger so
// library code can log before Init runs (and so tests need no setup).
var Logger = zap.NewNop()

// Init configures zap to write to stderr. Stdout is off limits: in stdio
// transport mode it carries the MCP protocol stream.
func Init(level string) error {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var logLevel zapcore.Level
	if level == "" {
		logLevel = zapcore.InfoLevel
	} else if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintf(os.Stderr, "unknown log level '%s', defaulting to 'info'\n", level)
		logLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		logLevel,
	)
	Logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	Logger.Info("logging initialized", zap.String("log_level", logLevel.String()))
	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

// WithComponent returns a logger pre-bound with a `component` field so callers
// don't have to repeat the same field across messages in a component.
func WithComponent(component string) *zap.Logger {
	return Logger.With(zap.String("component", component))
}

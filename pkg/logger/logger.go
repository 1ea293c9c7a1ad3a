// Package logger provides structured logging utilities.
// It wraps the zap logger with a simplified interface that follows
// the 12-Factor App logging principles (logs as event streams).
//
// 12-Factor App compliance:
//   - XI. Logs: Treat logs as event streams
//   - Output to stdout, no log file management
//   - Structured logging format (JSON) for easy parsing
package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// contextKey is a custom type for context keys.
type contextKey string

// RequestIDKey is the context key for the request ID.
const RequestIDKey contextKey = "request_id"

// Logger is the application logger.
type Logger struct {
	zap    *zap.Logger
	sugar  *zap.SugaredLogger
	fields []interface{}
}

// Config contains logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string

	// Format is the output format (json, console).
	Format string

	// Development enables development mode (more verbose)
	Development bool
}

// DefaultConfig returns the default logger configuration.
//
// Returns:
//   - Config: default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		Development: false,
	}
}

// New creates a new Logger with the given configuration.
//
// Parameters:
//   - cfg: Logger configuration
//
// Returns:
//   - *Logger: configured logger instance
//   - error: Any error during initialization
func New(cfg Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(os.Stdout),
		level,
	)

	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	zapLogger := zap.New(core, opts...)

	return &Logger{
		zap:   zapLogger,
		sugar: zapLogger.Sugar(),
	}, nil
}

// MustNew creates a new Logger and panics on error.
//
// Parameters:
//   - cfg: Logger configuration
//
// Returns:
//   - *Logger: configured logger instance
func MustNew(cfg Config) *Logger {
	logger, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return logger
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, append(l.fields, keysAndValues...)...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, append(l.fields, keysAndValues...)...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, append(l.fields, keysAndValues...)...)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(l.fields, keysAndValues...)...)
}

// Fatal logs a fatal message and exits the program.
func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.sugar.Fatalw(msg, append(l.fields, keysAndValues...)...)
}

// With returns a logger with additional context fields.
// These fields will be included in all subsequent log entries.
//
// Parameters:
//   - keysAndValues: key-value pairs to add
//
// Returns:
//   - *Logger: new logger with additional fields
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		zap:    l.zap,
		sugar:  l.sugar,
		fields: append(l.fields, keysAndValues...),
	}
}

// WithContext returns a logger with context information (e.g., request ID).
//
// Parameters:
//   - ctx: the context to extract values from
//
// Returns:
//   - *Logger: new logger with context fields
func (l *Logger) WithContext(ctx context.Context) *Logger {
	fields := make([]any, 0, len(l.fields)+2)
	fields = append(fields, l.fields...)

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		fields = append(fields, "request_id", requestID)
	}

	return &Logger{
		zap:    l.zap,
		sugar:  l.sugar,
		fields: fields,
	}
}

// Sync flushes any buffered log entries.
// Should be called before application exit.
//
// Returns:
//   - error: Any error during sync
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

// Named returns a named logger.
//
// Parameters:
//   - name: The logger name (will be added to log output)
//
// Returns:
//   - *Logger: A named logger
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		zap:    l.zap.Named(name),
		sugar:  l.zap.Named(name).Sugar(),
		fields: l.fields,
	}
}

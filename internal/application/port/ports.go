// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define the interfaces that the application layer requires from external
// services like logging.
//
// In Hexagonal Architecture (ports & adapters):
//   - Ports are interfaces that define what the application needs.
//   - Adapters are implementations of these interfaces
//   - this enables loose coupling and easy testing/swapping of implementations.
//
// SOLID Principles applied:
//   - Interface Segregation: small, focused interfaces
//   - Dependency Inversion: Application depends on abstractions
package port

import "context"

// Logger defines the interface for structured logging.
// Implementation may use zap, logrus, or the standard library.
//
// Example usage:
//
//	logger := zap.NewLogger()
//	logger.Info("Deliverable priced", "job", name, "total", total)
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})

	// With return a logger with additional context fields.
	With(keysAndValues ...interface{}) Logger

	// WithContext return a logger with context information (e.g., request ID).
	WithContext(ctx context.Context) Logger
}

// NopLogger is a Logger that discards everything. Useful as a default and
// in tests.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...interface{}) {}

// Info implements Logger.
func (NopLogger) Info(string, ...interface{}) {}

// Warn implements Logger.
func (NopLogger) Warn(string, ...interface{}) {}

// Error implements Logger.
func (NopLogger) Error(string, ...interface{}) {}

// With implements Logger.
func (n NopLogger) With(...interface{}) Logger { return n }

// WithContext implements Logger.
func (n NopLogger) WithContext(context.Context) Logger { return n }

// Package logger provides structured logging functionality for the application.
//
// It builds log/slog JSON loggers with configurable levels and carries
// request-scoped loggers through a context.Context.
package logger

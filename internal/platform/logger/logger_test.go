// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/casefile/internal/config"
	"github.com/phrazzld/casefile/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l, err := logger.Setup(config.ServerConfig{LogLevel: "debug", Port: 8080})

	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default(), "Setup should install the logger as default")
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := logger.ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestNew_WritesJSONAtLevel(t *testing.T) {
	t.Parallel()

	buf := &logger.TestLogBuffer{}
	l := logger.New(buf, "warn")

	l.Info("dropped")
	l.Warn("kept", "case_id", "42")

	assert.NotContains(t, buf.String(), "dropped")
	logger.AssertLogContains(t, buf, "kept")
	logger.AssertLogField(t, buf, "case_id", "42")
	logger.AssertLogField(t, buf, "level", "WARN")
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	fallback, _ := logger.GetTestLogger(t)
	custom, _ := logger.GetTestLogger(t)

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_fallback",
			ctx:      nil,
			expected: fallback,
		},
		{
			name:     "context_without_logger_returns_fallback",
			ctx:      context.Background(),
			expected: fallback,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), custom),
			expected: custom,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Same(t, tt.expected, logger.FromContextOrDefault(tt.ctx, fallback))
		})
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid_logger", func(t *testing.T) {
		t.Parallel()
		custom, _ := logger.GetTestLogger(t)
		ctx := logger.WithLogger(context.Background(), custom)
		assert.Same(t, custom, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestWithTraceID(t *testing.T) {
	t.Parallel()

	l, buf := logger.GetTestLogger(t)
	ctx := logger.WithLogger(context.Background(), l)
	ctx = logger.WithTraceID(ctx, "trace-123")

	assert.Equal(t, "trace-123", logger.TraceIDFromContext(ctx))
	logger.FromContext(ctx).Info("handled")
	logger.AssertLogField(t, buf, "trace_id", "trace-123")

	bare := logger.WithTraceID(context.Background(), "trace-456")
	assert.Equal(t, "trace-456", logger.TraceIDFromContext(bare))
	assert.Equal(t, "", logger.TraceIDFromContext(context.Background()))
}

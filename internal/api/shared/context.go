package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/phrazzld/casefile/internal/platform/logger"
)

// ContextKey is the type of the request context keys set by the API layer.
type ContextKey string

const (
	// PublicKeyContextKey is the context key for the caller's public key.
	PublicKeyContextKey ContextKey = "publicKey"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID generates a trace ID and stores it in the context. A logger
// already stored in the context is tagged with it.
func SetTraceID(ctx context.Context) context.Context {
	return logger.WithTraceID(ctx, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	return logger.TraceIDFromContext(ctx)
}

// WithPublicKey stores the caller's public key in the context.
func WithPublicKey(ctx context.Context, publicKey string) context.Context {
	return context.WithValue(ctx, PublicKeyContextKey, publicKey)
}

// GetPublicKey returns the caller's public key, if the identity middleware
// found one.
func GetPublicKey(ctx context.Context) (string, bool) {
	publicKey, ok := ctx.Value(PublicKeyContextKey).(string)
	return publicKey, ok && publicKey != ""
}

// generateTraceID creates a random 32-character hex trace ID. If crypto/rand
// fails it falls back to a time-based ID, never a static value.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)

	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"bytes_read", n,
			"bytes_requested", TraceIDLength,
			"fallback", "time-based generation")
		return generateFallbackTraceID()
	}

	return hex.EncodeToString(b)
}

func generateFallbackTraceID() string {
	fallbackID := make([]byte, TraceIDLength)

	now := time.Now()
	binary.BigEndian.PutUint64(fallbackID[:8], uint64(now.UnixNano()))
	binary.BigEndian.PutUint32(fallbackID[8:12], uint32(now.Nanosecond()))
	binary.BigEndian.PutUint32(fallbackID[12:16], uint32(now.Unix()))

	return hex.EncodeToString(fallbackID)
}

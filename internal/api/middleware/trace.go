package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/casefile/internal/api/shared"
	"github.com/phrazzld/casefile/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that stores a request logger and a
// fresh trace ID in the request context. Handlers and services reach the
// logger through logger.FromContext and every line carries trace_id.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithLogger(r.Context(), base)
			ctx = shared.SetTraceID(ctx)

			logger.FromContext(ctx).Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/casefile/internal/platform/logger"
)

// AuditLogHandler writes every event it receives to the structured log.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler logging through l.
func NewAuditLogHandler(l *slog.Logger) *AuditLogHandler {
	if l == nil {
		l = slog.Default()
	}
	return &AuditLogHandler{logger: l.With("component", "audit")}
}

// HandleEvent implements EventHandler.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *Event) error {
	log := h.logger
	if traceID := logger.TraceIDFromContext(ctx); traceID != "" {
		log = log.With(slog.String("trace_id", traceID))
	}
	log.InfoContext(ctx, "case event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Time("event_time", event.CreatedAt),
		slog.String("payload", string(event.Payload)),
	)
	return nil
}

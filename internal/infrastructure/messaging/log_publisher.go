package messaging

import (
	"context"
	"log/slog"

	"github.com/openisa/nps-stub/internal/domain/event"
)

// LogPublisher writes audit events to the structured log. It is the
// default publisher when no Kafka broker is configured, keeping the stub
// fully standalone while preserving the audit trail.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs each audit event. It never fails.
func (p *LogPublisher) Publish(_ context.Context, events ...event.AuditEvent) error {
	for _, evt := range events {
		p.logger.Info("audit event",
			"event_id", evt.EventID().String(),
			"event_type", evt.EventType(),
			"reference", evt.Reference(),
			"occurred_at", evt.OccurredAt(),
		)
	}
	return nil
}

package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/openisa/nps-stub/internal/domain/event"
	pkgkafka "github.com/openisa/nps-stub/pkg/kafka"
)

// KafkaPublisher publishes audit events to Kafka topics, one topic per
// event type.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	logger   *slog.Logger
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		logger:   logger,
	}
}

// Publish publishes one or more audit events to Kafka. The event ID is
// used as the message key so replays of the same event land in order.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...event.AuditEvent) error {
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", evt.EventType(), err)
		}

		topic := topicForEvent(evt)
		msg := pkgkafka.Message{
			Key:   []byte(evt.EventID().String()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
			},
		}

		if err := p.producer.Publish(ctx, topic, msg); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", evt.EventType(), err)
		}

		p.logger.Debug("audit event published",
			"event_type", evt.EventType(),
			"reference", evt.Reference(),
			"topic", topic,
		)
	}

	return nil
}

// topicForEvent returns the Kafka topic for a given audit event.
func topicForEvent(evt event.AuditEvent) string {
	switch evt.(type) {
	case event.ReturnsSubmitted:
		return "npsstub.returns.submitted"
	case event.DeclarationSubmitted:
		return "npsstub.declaration.submitted"
	case event.ReportRetrieved:
		return "npsstub.report.retrieved"
	default:
		return "npsstub.unknown"
	}
}

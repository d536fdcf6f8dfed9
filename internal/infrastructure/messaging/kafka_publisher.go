package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
	"github.com/sailakshmi-repaka/LoanShield/pkg/events"
	"github.com/sailakshmi-repaka/LoanShield/pkg/kafka"
)

// Compile-time interface check.
var _ port.EventPublisher = (*KafkaPublisher)(nil)

// KafkaPublisher implements port.EventPublisher on the shared Kafka producer.
// Messages are keyed by aggregate id so events for one assessment or report
// land on the same partition in order.
type KafkaPublisher struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

// NewKafkaPublisher creates a new Kafka event publisher.
func NewKafkaPublisher(producer *kafka.Producer, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		logger:   logger,
	}
}

// Publish sends domain events to the producer's topic.
func (p *KafkaPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", evt.EventType(), err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: payload,
			Headers: map[string]string{
				"event_type":     evt.EventType(),
				"aggregate_type": evt.AggregateType(),
			},
		})
	}

	if err := p.producer.Publish(ctx, messages...); err != nil {
		return err
	}

	p.logger.Debug("published events",
		slog.String("topic", p.producer.Topic()),
		slog.Int("count", len(messages)),
	)
	return nil
}

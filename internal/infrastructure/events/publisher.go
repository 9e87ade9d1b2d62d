// Package events publishes sale lifecycle events to Kafka so downstream
// consumers (accounting sync, analytics pipelines) can react to sales
// without polling the API. Publishing is fire-and-forget: a broker
// outage never fails the originating request.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/stockify/stockify-api/internal/config"
)

// Event types emitted on the sales topic
const (
	EventOrderCreated  = "order.created"
	EventOrderUpdated  = "order.updated"
	EventOrderDeleted  = "order.deleted"
	EventReturnCreated = "return.created"
)

// Envelope wraps every published event
type Envelope struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// Publisher emits domain events
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload interface{})
	Close() error
}

// KafkaPublisher implements Publisher on a kafka-go writer
type KafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// NewKafkaPublisher creates a publisher for the configured topic
func NewKafkaPublisher(cfg *config.KafkaConfig, logger zerolog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// Publish writes the event to the topic. Failures are logged and dropped
// so the caller's request never depends on broker availability.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, payload interface{}) {
	value, err := json.Marshal(Envelope{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("event", eventType).Msg("failed to marshal event")
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error().Err(err).Str("event", eventType).Str("key", key).Msg("failed to publish event")
	}
}

// Close flushes and closes the underlying writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ Publisher = (*KafkaPublisher)(nil)

// NopPublisher discards events. Used when Kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, interface{}) {}

func (NopPublisher) Close() error { return nil }

var _ Publisher = (*NopPublisher)(nil)

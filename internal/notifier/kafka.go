package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/wetland/storefront-service/internal/config"
	"github.com/wetland/storefront-service/internal/events"

	"github.com/segmentio/kafka-go"
)

// envelope is the wire form of a lifecycle event on the Kafka topic.
type envelope struct {
	EventType  string    `json:"event_type"`
	EventID    string    `json:"event_id"`
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaRelay forwards every lifecycle event to a broker topic so external
// consumers (analytics, a real mail pipeline) can react without touching
// the in-process bus. The writer retries internally; anything beyond
// at-least-once belongs here, not in the bus.
type KafkaRelay struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaRelay(logger *slog.Logger, cfg config.Kafka) *KafkaRelay {
	return &KafkaRelay{
		logger: logger.With(slog.String("notifier", "kafka_relay")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

func (r *KafkaRelay) Name() string { return "kafka_relay" }

func (r *KafkaRelay) Handle(event string, payload events.Payload) error {
	data, err := json.Marshal(envelope{
		EventType:  event,
		EventID:    payload.EventID,
		OrderID:    payload.OrderID,
		Status:     payload.Status,
		OccurredAt: payload.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Keyed by order id so per-order event ordering survives partitioning.
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(payload.OrderID, 10)),
		Value: data,
	}
	if err := r.writer.WriteMessages(context.Background(), msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	r.logger.Debug("event relayed",
		slog.String("event", event),
		slog.Int64("order_id", payload.OrderID),
	)
	return nil
}

func (r *KafkaRelay) Close() error {
	return r.writer.Close()
}

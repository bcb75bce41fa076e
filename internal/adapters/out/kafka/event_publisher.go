// Package kafka publishes committed order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventMessage is the JSON value written for every event. The message key is
// the order id so the events of one order stay in one partition.
type EventMessage struct {
	EventID     uuid.UUID   `json:"event_id"`
	Type        string      `json:"type"`
	OrderID     uuid.UUID   `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	UserID      uuid.UUID   `json:"user_id"`
	Status      string      `json:"status"`
	PayAmount   int64       `json:"pay_amount"`
	ItemIDs     []uuid.UUID `json:"item_ids,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// EventPublisher writes events asynchronously. Delivery failures are logged
// by the writer's completion callback and never reach the caller.
type EventPublisher struct {
	writer messageWriter
	topic  string
	logger *zap.Logger
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewEventPublisher(brokers []string, topic string, logger *zap.Logger) *EventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "kafka-publisher"), zap.String("topic", topic))

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err == nil {
				return
			}
			for _, m := range messages {
				logger.Error("order event was not delivered", zap.ByteString("order_id", m.Key), zap.Error(err))
			}
		},
	}
	logger.Info("kafka publisher initialized", zap.Strings("brokers", brokers))

	return newEventPublisher(writer, topic, logger)
}

func newEventPublisher(writer messageWriter, topic string, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{writer: writer, topic: topic, logger: logger}
}

func (p *EventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(toMessage(e))
		if err != nil {
			return pkgerrors.Wrapf(err, "encode event %s", e.ID)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(e.OrderID.String()),
			Value: value,
			Time:  e.OccurredAt,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(e.Type)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return pkgerrors.Wrapf(err, "write %d events to %s", len(messages), p.topic)
	}
	p.logger.Debug("order events queued", zap.Int("count", len(messages)))
	return nil
}

// Close flushes pending messages.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(e order.Event) EventMessage {
	return EventMessage{
		EventID:     e.ID,
		Type:        string(e.Type),
		OrderID:     e.OrderID,
		OrderNumber: e.OrderNumber,
		UserID:      e.UserID,
		Status:      e.Status.String(),
		PayAmount:   e.PayAmount,
		ItemIDs:     e.ItemIDs,
		OccurredAt:  e.OccurredAt,
	}
}

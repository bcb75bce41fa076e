package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockWriter struct{ mock.Mock }

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

func testEvent() order.Event {
	return order.Event{
		ID:          uuid.New(),
		Type:        order.EventOrderItemsShipped,
		OrderID:     uuid.New(),
		OrderNumber: "20260301070000000042",
		UserID:      uuid.New(),
		Status:      order.AlreadyShipment,
		PayAmount:   450,
		ItemIDs:     []uuid.UUID{uuid.New()},
		OccurredAt:  time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC),
	}
}

func TestEventPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	event := testEvent()
	writer := new(mockWriter)

	var written []kafka.Message
	writer.On("WriteMessages", ctx, mock.Anything).
		Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message) }).
		Return(nil).Once()

	err := newEventPublisher(writer, "orders", zap.NewNop()).Publish(ctx, event)

	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, event.OrderID.String(), string(written[0].Key))
	assert.Equal(t, event.OccurredAt, written[0].Time)
	assert.Equal(t, "order.items_shipped", string(written[0].Headers[0].Value))

	var msg EventMessage
	require.NoError(t, json.Unmarshal(written[0].Value, &msg))
	assert.Equal(t, event.ID, msg.EventID)
	assert.Equal(t, "order.items_shipped", msg.Type)
	assert.Equal(t, "ALREADY_SHIPMENT", msg.Status)
	assert.Equal(t, int64(450), msg.PayAmount)
	assert.Equal(t, event.ItemIDs, msg.ItemIDs)
	writer.AssertExpectations(t)
}

func TestEventPublisher_Publish_NoEvents(t *testing.T) {
	writer := new(mockWriter)

	err := newEventPublisher(writer, "orders", zap.NewNop()).Publish(t.Context())

	require.NoError(t, err)
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestEventPublisher_Publish_WriterError(t *testing.T) {
	ctx := t.Context()
	writer := new(mockWriter)
	writer.On("WriteMessages", ctx, mock.Anything).Return(errors.New("no brokers")).Once()

	err := newEventPublisher(writer, "orders", zap.NewNop()).Publish(ctx, testEvent(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write 2 events to orders")
	assert.Contains(t, err.Error(), "no brokers")
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, ParseBrokers(" k1:9092, ,k2:9092 "))
	assert.Empty(t, ParseBrokers(""))
}

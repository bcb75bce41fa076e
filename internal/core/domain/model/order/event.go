package order

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a change of an order that other services may react to.
type EventType string

const (
	EventOrderCreated          EventType = "order.created"
	EventOrderPaymentConfirmed EventType = "order.payment_confirmed"
	EventOrderCancelled        EventType = "order.cancelled"
	EventOrderItemsShipped     EventType = "order.items_shipped"
)

// Event is raised inside a unit of work and published once it commits.
type Event struct {
	ID          uuid.UUID
	Type        EventType
	OrderID     uuid.UUID
	OrderNumber string
	UserID      uuid.UUID
	Status      Status
	PayAmount   int64
	ItemIDs     []uuid.UUID
	OccurredAt  time.Time
}

// NewEvent captures the state of o after the change described by eventType.
func NewEvent(eventType EventType, o Order, itemIDs []uuid.UUID, now time.Time) Event {
	return Event{
		ID:          uuid.New(),
		Type:        eventType,
		OrderID:     o.ID,
		OrderNumber: o.Number,
		UserID:      o.UserID,
		Status:      o.Status,
		PayAmount:   o.PayAmount,
		ItemIDs:     itemIDs,
		OccurredAt:  now,
	}
}

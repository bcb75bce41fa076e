// Package ports defines the contracts between the order lifecycle and the
// infrastructure it runs on: the order aggregate store, the unit of work that
// makes multi-record writes atomic, and the external collaborators.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderFilter selects a page of orders. Zero values do not filter.
// Soft-deleted orders are never returned.
type OrderFilter struct {
	UserID      *uuid.UUID
	Status      *order.Status
	Number      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Offset      int
	Limit       int
}

// OrderRepository persists order records. Reads skip soft-deleted orders.
type OrderRepository interface {
	// Add inserts a new order.
	Add(ctx context.Context, o *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)

	// GetForUpdate returns the order and locks its row until the surrounding
	// transaction ends. Every handler that changes an existing order calls it
	// first, which serializes concurrent changes of the same order.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)

	// Update writes the fields set in patch and bumps the version. When the
	// patch carries an expected version and the stored one differs, it fails
	// with errs.ConcurrentModificationError.
	Update(ctx context.Context, id uuid.UUID, patch order.OrderPatch) error

	// Count returns the number of orders matching filter, ignoring paging.
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// Find returns one page of orders matching filter, newest first.
	Find(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// FindExpiredUnpaid returns ids of orders still waiting for payment that
	// were created before the given time, oldest first.
	FindExpiredUnpaid(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error)
}

// OrderItemRepository persists order items.
type OrderItemRepository interface {
	AddAll(ctx context.Context, items []*order.Item) error

	// ListByOrder returns the items of one order with the given deleted flag.
	ListByOrder(ctx context.Context, orderID uuid.UUID, deleted bool) ([]*order.Item, error)

	// ListByOrders returns the items of many orders in one round trip.
	ListByOrders(ctx context.Context, orderIDs []uuid.UUID, deleted bool) ([]*order.Item, error)

	// Update patches one item of the order. Missing items are reported as
	// errs.ObjectNotFoundError.
	Update(ctx context.Context, orderID, itemID uuid.UUID, patch order.ItemPatch) error

	// UpdateByIDs patches the listed non-deleted items of the order. It fails
	// with errs.ConcurrentModificationError unless every listed item was updated.
	UpdateByIDs(ctx context.Context, orderID uuid.UUID, itemIDs []uuid.UUID, patch order.ItemPatch) error

	// UpdateByOrder patches every non-deleted item of the order.
	UpdateByOrder(ctx context.Context, orderID uuid.UUID, patch order.ItemPatch) error
}

// OrderRecipientRepository persists recipients, one per order.
type OrderRecipientRepository interface {
	Add(ctx context.Context, recipient *order.Recipient) error
	GetByOrder(ctx context.Context, orderID uuid.UUID) (*order.Recipient, error)
	ListByOrders(ctx context.Context, orderIDs []uuid.UUID) ([]*order.Recipient, error)
}

// OrderLogisticsRepository persists shipments.
type OrderLogisticsRepository interface {
	Add(ctx context.Context, logistics *order.Logistics) error
	Get(ctx context.Context, id uuid.UUID) (*order.Logistics, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*order.Logistics, error)
	Update(ctx context.Context, id uuid.UUID, patch order.LogisticsPatch) error
}

// OrderCancellationRepository persists cancellation records.
type OrderCancellationRepository interface {
	Add(ctx context.Context, cancellation *order.Cancellation) error

	// GetByOrder returns the cancellation of the order, or nil when the order
	// was never cancelled.
	GetByOrder(ctx context.Context, orderID uuid.UUID) (*order.Cancellation, error)
}

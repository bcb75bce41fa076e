package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// PricedSku is the catalog view of a sku at the time of the lookup.
type PricedSku struct {
	SkuID string
	// Quantity is the stock available for sale.
	Quantity int
	Price    int64
	Name     string
	ImageURL string
}

// CatalogService prices skus in bulk.
type CatalogService interface {
	GetPricedSkus(ctx context.Context, skuIDs []string) ([]PricedSku, error)
}

// AddressService reads a buyer's address book.
type AddressService interface {
	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (order.Address, error)
}

// PendingTransaction asks the payment service to expect a payment.
type PendingTransaction struct {
	OrderID     uuid.UUID
	OrderNumber string
	UserID      uuid.UUID
	Amount      int64
	ClientIP    string
	ExpiresAt   time.Time
}

// TransactionHandle identifies a pending payment.
type TransactionHandle struct {
	TransactionID string
}

// PaymentService opens pending payments.
type PaymentService interface {
	CreatePendingTransaction(ctx context.Context, tx PendingTransaction) (TransactionHandle, error)
}

// OrderNumberGenerator issues unique human-facing order numbers.
type OrderNumberGenerator interface {
	Next(ctx context.Context) (string, error)
}

// EventPublisher delivers committed domain events. Failures are reported to
// the caller, which logs them; they never undo the committed change.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}

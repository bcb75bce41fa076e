package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one business operation. Every
// repository it returns after Begin works inside the same transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction and then publishes the raised events.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and the raised events.
	Rollback(ctx context.Context) error

	// Raise queues events for publication after a successful commit.
	Raise(events ...order.Event)

	OrderRepository() OrderRepository
	OrderItemRepository() OrderItemRepository
	OrderRecipientRepository() OrderRecipientRepository
	OrderLogisticsRepository() OrderLogisticsRepository
	OrderCancellationRepository() OrderCancellationRepository
}

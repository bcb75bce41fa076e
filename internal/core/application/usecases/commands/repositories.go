// Package commands contains the order lifecycle operations that modify state.
// Every command is built by its constructor, which validates the input, and is
// executed by a handler that runs all of its writes inside one unit of work.
package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it
// writes through, all bound to the same transaction.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EventRaiser queues domain events until the transaction commits.
	EventRaiser interface {
		Raise(events ...order.Event)
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ItemRepoFactory interface {
		OrderItemRepository() ports.OrderItemRepository
	}

	RecipientRepoFactory interface {
		OrderRecipientRepository() ports.OrderRecipientRepository
	}

	LogisticsRepoFactory interface {
		OrderLogisticsRepository() ports.OrderLogisticsRepository
	}

	CancellationRepoFactory interface {
		OrderCancellationRepository() ports.OrderCancellationRepository
	}

	// OrderUoW covers single-row order patches: remark and soft delete.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ItemUoW covers item changes that may recompute the order total.
	ItemUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
	}

	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// LogisticsUoW covers shipment corrections.
	LogisticsUoW interface {
		TxManager
		LogisticsRepoFactory
	}

	LogisticsUoWFactory interface {
		Create() LogisticsUoW
	}

	// UoW spans the whole order aggregate and publishes events on commit.
	// Used by creation, payment confirmation, cancellation and delivery.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   // ... write items, logistics, cancellation
	//   uow.Raise(order.NewEvent(order.EventOrderCancelled, *o, nil, now))
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		EventRaiser
		OrderRepoFactory
		ItemRepoFactory
		RecipientRepoFactory
		LogisticsRepoFactory
		CancellationRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

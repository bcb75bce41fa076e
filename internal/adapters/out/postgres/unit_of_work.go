// Package postgres provides the GORM-based Unit of Work for the order store.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it after Begin share that transaction, so an order, its items, recipient,
// shipments and cancellation are written all-or-nothing.
//
// Handlers raise domain events on the unit of work while they work. Events
// are held until Commit succeeds and are then handed to the event publisher;
// Rollback drops them. A publish failure is logged and never undoes the
// committed change.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// ... write through the repositories
//	uow.Raise(order.NewEvent(order.EventOrderCancelled, *o, nil, now))
//
//	return uow.Commit(ctx)
//
// Each goroutine needs its own UnitOfWork; instances are not safe for
// concurrent use.
package postgres

import (
	"context"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewGormUnitOfWorkFactory creates the factory. A nil publisher disables
// event publication; a nil logger discards logs.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *zap.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.Named("uow"),
	}
}

// Create produces a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// GormUnitOfWork implements ports.UnitOfWork on a GORM transaction.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.EventPublisher
	logger    *zap.Logger
	pending   []order.Event
}

// Begin opens the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

// Commit commits the transaction and publishes the raised events.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	events := uow.pending
	uow.pending = nil
	if err != nil {
		return err
	}

	uow.publish(ctx, events)
	return nil
}

// Rollback discards the transaction and the raised events. It returns
// gorm.ErrInvalidTransaction when nothing is open, which makes the deferred
// rollback after a successful commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.pending = nil
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// Raise queues events for publication after Commit.
func (uow *GormUnitOfWork) Raise(events ...order.Event) {
	uow.pending = append(uow.pending, events...)
}

func (uow *GormUnitOfWork) publish(ctx context.Context, events []order.Event) {
	if uow.publisher == nil || len(events) == 0 {
		return
	}
	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.Error("publish committed events",
			zap.Int("events", len(events)),
			zap.String("order_id", events[0].OrderID.String()),
			zap.Error(err))
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderItemRepository() ports.OrderItemRepository {
	return orderrepo.NewGormOrderItemRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRecipientRepository() ports.OrderRecipientRepository {
	return orderrepo.NewGormOrderRecipientRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderLogisticsRepository() ports.OrderLogisticsRepository {
	return orderrepo.NewGormOrderLogisticsRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderCancellationRepository() ports.OrderCancellationRepository {
	return orderrepo.NewGormOrderCancellationRepository(uow.conn())
}

package cmd

import (
	orderhttp "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/collaborators"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/ordernumber"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *zap.Logger
	publisher  *kafka.EventPublisher
	uowFactory *postgres.GormUnitOfWorkFactory
	numbers    *ordernumber.SequenceGenerator
	catalog    *collaborators.CatalogClient
	addresses  *collaborators.AddressClient
	payments   *collaborators.PaymentClient
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	numbers, err := ordernumber.NewSequenceGenerator(gormDB, config.ShardID)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		config:    config,
		gormDB:    gormDB,
		logger:    logger,
		numbers:   numbers,
		catalog:   collaborators.NewCatalogClient(config.CatalogServiceURL, config.CollaboratorTimeout),
		addresses: collaborators.NewAddressClient(config.AddressServiceURL, config.CollaboratorTimeout),
		payments:  collaborators.NewPaymentClient(config.PaymentServiceURL, config.CollaboratorTimeout),
	}

	// An interface holding a nil *EventPublisher is not nil, so the factory
	// only sees a publisher when one exists.
	var publisher ports.EventPublisher
	if brokers := kafka.ParseBrokers(config.KafkaBrokers); len(brokers) > 0 {
		root.publisher = kafka.NewEventPublisher(brokers, config.KafkaOrderEventsTopic, logger)
		publisher = root.publisher
	} else {
		logger.Warn("no kafka brokers configured, order events are not published")
	}
	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)

	return root, nil
}

// Close flushes the event publisher.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) itemUoW() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) logisticsUoW() commands.LogisticsUoWFactory {
	return FuncLogisticsUoWFactory(func() commands.LogisticsUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.catalog, c.addresses, c.payments, c.numbers,
		commands.PaymentSettings{Enabled: c.config.PaymentEnabled, Expiry: c.config.PaymentExpiry})
}

func (c *CompositionRoot) CreateUpdateOrderItemCommandHandler() commands.UpdateOrderItemCommandHandler {
	return commands.NewUpdateOrderItemCommandHandler(c.itemUoW())
}

func (c *CompositionRoot) CreateUpdateItemPayAmountCommandHandler() commands.UpdateItemPayAmountCommandHandler {
	return commands.NewUpdateItemPayAmountCommandHandler(c.itemUoW())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDeliverOrderItemsCommandHandler() commands.DeliverOrderItemsCommandHandler {
	return commands.NewDeliverOrderItemsCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDeleteOrderItemsCommandHandler() commands.DeleteOrderItemsCommandHandler {
	return commands.NewDeleteOrderItemsCommandHandler(c.itemUoW())
}

func (c *CompositionRoot) CreateUpdateOrderRemarkCommandHandler() commands.UpdateOrderRemarkCommandHandler {
	return commands.NewUpdateOrderRemarkCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateUpdateLogisticsCommandHandler() commands.UpdateLogisticsCommandHandler {
	return commands.NewUpdateLogisticsCommandHandler(c.logisticsUoW())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateGetOrdersPageQueryHandler() queries.GetOrdersPageQueryHandler {
	return queries.NewGetOrdersPageQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		orderrepo.NewGormOrderItemRepository(c.gormDB),
		orderrepo.NewGormOrderRecipientRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		orderrepo.NewGormOrderItemRepository(c.gormDB),
		orderrepo.NewGormOrderRecipientRepository(c.gormDB),
		orderrepo.NewGormOrderLogisticsRepository(c.gormDB),
		orderrepo.NewGormOrderCancellationRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateHTTPServer() *orderhttp.Server {
	return orderhttp.NewServer(orderhttp.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateOrderItem:     c.CreateUpdateOrderItemCommandHandler(),
		UpdateItemPayAmount: c.CreateUpdateItemPayAmountCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		ConfirmPayment:      c.CreateConfirmPaymentCommandHandler(),
		DeliverOrderItems:   c.CreateDeliverOrderItemsCommandHandler(),
		DeleteOrderItems:    c.CreateDeleteOrderItemsCommandHandler(),
		UpdateOrderRemark:   c.CreateUpdateOrderRemarkCommandHandler(),
		UpdateLogistics:     c.CreateUpdateLogisticsCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		GetOrdersPage:       c.CreateGetOrdersPageQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expiry := jobs.NewPaymentExpiryJob(
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.CreateCancelOrderCommandHandler(),
		jobs.PaymentExpiryConfig{
			Schedule:  c.config.ExpiryJobSchedule,
			Expiry:    c.config.PaymentExpiry,
			BatchSize: c.config.ExpiryJobBatchSize,
		},
		c.logger,
	)
	return jobs.NewJobManager(c.logger, expiry)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncLogisticsUoWFactory func() commands.LogisticsUoW

func (f FuncLogisticsUoWFactory) Create() commands.LogisticsUoW {
	return f()
}

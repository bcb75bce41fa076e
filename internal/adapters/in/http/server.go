package http

import (
	"context"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// Use cases the server dispatches to. The command and query handlers satisfy
// them directly.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}
	UpdateOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderItemCommand) error
	}
	UpdateItemPayAmountHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateItemPayAmountCommand) (int64, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	ConfirmPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) error
	}
	DeliverOrderItemsHandler interface {
		Handle(ctx context.Context, cmd commands.DeliverOrderItemsCommand) (commands.DeliverResult, error)
	}
	DeleteOrderItemsHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderItemsCommand) (int64, error)
	}
	UpdateOrderRemarkHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderRemarkCommand) error
	}
	UpdateLogisticsHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateLogisticsCommand) error
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	GetOrdersPageHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersPageQuery) (queries.OrdersPage, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetails, error)
	}
)

// Handlers groups every use case exposed over HTTP.
type Handlers struct {
	CreateOrder         CreateOrderHandler
	UpdateOrderItem     UpdateOrderItemHandler
	UpdateItemPayAmount UpdateItemPayAmountHandler
	CancelOrder         CancelOrderHandler
	ConfirmPayment      ConfirmPaymentHandler
	DeliverOrderItems   DeliverOrderItemsHandler
	DeleteOrderItems    DeleteOrderItemsHandler
	UpdateOrderRemark   UpdateOrderRemarkHandler
	UpdateLogistics     UpdateLogisticsHandler
	DeleteOrder         DeleteOrderHandler

	GetOrdersPage GetOrdersPageHandler
	GetOrder      GetOrderHandler
}

// Server translates HTTP requests into commands and queries and their
// results back into JSON.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With(zap.String("component", "http")),
	}
}

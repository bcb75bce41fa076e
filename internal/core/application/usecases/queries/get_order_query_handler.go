package queries

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

type GetOrderQueryHandler struct {
	orders        ports.OrderRepository
	items         ports.OrderItemRepository
	recipients    ports.OrderRecipientRepository
	logistics     ports.OrderLogisticsRepository
	cancellations ports.OrderCancellationRepository
}

func NewGetOrderQueryHandler(
	orders ports.OrderRepository,
	items ports.OrderItemRepository,
	recipients ports.OrderRecipientRepository,
	logistics ports.OrderLogisticsRepository,
	cancellations ports.OrderCancellationRepository,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders:        orders,
		items:         items,
		recipients:    recipients,
		logistics:     logistics,
		cancellations: cancellations,
	}
}

// Handle returns order.ErrOrderNotFound for unknown and soft-deleted orders.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OrderDetails{}, fmt.Errorf("order %s: %w", query.OrderID(), order.ErrOrderNotFound)
	}
	if err != nil {
		return OrderDetails{}, err
	}

	details := OrderDetails{Order: o}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details.Items, err = h.items.ListByOrder(gctx, o.ID, false)
		return err
	})
	g.Go(func() error {
		var err error
		details.Recipient, err = h.recipients.GetByOrder(gctx, o.ID)
		return err
	})
	g.Go(func() error {
		var err error
		details.Logistics, err = h.logistics.ListByOrder(gctx, o.ID)
		return err
	})
	g.Go(func() error {
		var err error
		details.Cancellation, err = h.cancellations.GetByOrder(gctx, o.ID)
		return err
	})
	if err = g.Wait(); err != nil {
		return OrderDetails{}, err
	}

	return details, nil
}

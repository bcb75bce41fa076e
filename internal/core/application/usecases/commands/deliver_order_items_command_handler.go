package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/google/uuid"
)

// DeliverResult describes the shipment that was recorded.
type DeliverResult struct {
	LogisticsID uuid.UUID
	// OrderStatus is ALREADY_SHIPMENT when this was the last batch and
	// unchanged otherwise.
	OrderStatus order.Status
}

// DeliverOrderItemsCommandHandler records a partial or final shipment.
//
// The order row lock is taken before items are read, so two deliveries of the
// same order run one after the other and only the one that ships the last
// outstanding item promotes the order.
type DeliverOrderItemsCommandHandler struct {
	uowFactory UoWFactory
	planner    services.DeliveryPlanner
	now        Clock
}

func NewDeliverOrderItemsCommandHandler(uowFactory UoWFactory) DeliverOrderItemsCommandHandler {
	return DeliverOrderItemsCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewDeliveryPlanner(),
		now:        utcNow,
	}
}

// Handle rejects the whole batch with order.ErrDeliveryDataMismatch when any
// requested item is unknown, deleted or not waiting for shipment.
func (h DeliverOrderItemsCommandHandler) Handle(ctx context.Context, cmd DeliverOrderItemsCommand) (DeliverResult, error) {
	if err := cmd.Validate(); err != nil {
		return DeliverResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DeliverResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := lockOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return DeliverResult{}, err
	}

	itemRepo := uow.OrderItemRepository()
	items, err := itemRepo.ListByOrder(ctx, o.ID, false)
	if err != nil {
		return DeliverResult{}, err
	}

	plan, err := h.planner.Plan(items, cmd.ItemIDs())
	if err != nil {
		return DeliverResult{}, fmt.Errorf("order %s: %w", o.ID, err)
	}

	recipient, err := uow.OrderRecipientRepository().GetByOrder(ctx, o.ID)
	if err != nil {
		return DeliverResult{}, err
	}

	now := h.now()
	logistics, err := order.NewLogistics(uuid.New(), recipient, cmd.Carrier(), cmd.TrackingNumber(), now)
	if err != nil {
		return DeliverResult{}, err
	}

	if err = uow.OrderLogisticsRepository().Add(ctx, logistics); err != nil {
		return DeliverResult{}, err
	}

	shippedIDs := plan.ShippedIDs()
	if err = itemRepo.UpdateByIDs(ctx, o.ID, shippedIDs, order.ItemPatch{}.
		WithStatus(order.ItemAlreadyShipment).
		WithLogisticsID(logistics.ID).
		WithDeliveryTime(now)); err != nil {
		return DeliverResult{}, err
	}

	status := o.Status
	if plan.IsLastBatch() {
		status, err = o.Status.Ship()
		if err != nil {
			return DeliverResult{}, fmt.Errorf("order %s: %w", o.ID, err)
		}

		patch := order.OrderPatch{}.
			WithStatus(status).
			WithDeliveryTime(now).
			WithExpectedVersion(o.Version)
		if err = orderRepo.Update(ctx, o.ID, patch); err != nil {
			return DeliverResult{}, err
		}
		shipped := patch.Apply(*o)
		o = &shipped
	}

	uow.Raise(order.NewEvent(order.EventOrderItemsShipped, *o, shippedIDs, now))

	if err = uow.Commit(ctx); err != nil {
		return DeliverResult{}, err
	}

	return DeliverResult{
		LogisticsID: logistics.ID,
		OrderStatus: status,
	}, nil
}

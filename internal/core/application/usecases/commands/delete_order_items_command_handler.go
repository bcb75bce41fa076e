package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// DeleteOrderItemsCommandHandler soft-deletes items and writes the total of
// the remaining ones. An order always keeps at least one item. Removing the
// last item still waiting for shipment ships the order.
type DeleteOrderItemsCommandHandler struct {
	uowFactory ItemUoWFactory
	planner    services.ItemRemovalPlanner
	now        Clock
}

func NewDeleteOrderItemsCommandHandler(uowFactory ItemUoWFactory) DeleteOrderItemsCommandHandler {
	return DeleteOrderItemsCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewItemRemovalPlanner(),
		now:        utcNow,
	}
}

// Handle returns the new order total.
func (h DeleteOrderItemsCommandHandler) Handle(ctx context.Context, cmd DeleteOrderItemsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := lockOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	itemRepo := uow.OrderItemRepository()
	items, err := itemRepo.ListByOrder(ctx, o.ID, false)
	if err != nil {
		return 0, err
	}

	plan, err := h.planner.Plan(items, cmd.ItemIDs())
	if err != nil {
		return 0, fmt.Errorf("order %s: %w", o.ID, err)
	}

	if err = itemRepo.UpdateByIDs(ctx, o.ID, plan.Removed, order.ItemPatch{}.WithDeleted(true)); err != nil {
		return 0, err
	}

	total := plan.PayAmount()
	patch := order.OrderPatch{}.
		WithPayAmount(total).
		WithExpectedVersion(o.Version)
	if plan.CompletesShipment(o.Status) {
		status, err := o.Status.Ship()
		if err != nil {
			return 0, fmt.Errorf("order %s: %w", o.ID, err)
		}
		patch = patch.WithStatus(status).WithDeliveryTime(h.now())
	}
	if err = orderRepo.Update(ctx, o.ID, patch); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return total, nil
}

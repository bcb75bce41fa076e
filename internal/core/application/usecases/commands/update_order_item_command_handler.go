package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UpdateOrderItemCommandHandler applies an item correction under the order lock.
type UpdateOrderItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewUpdateOrderItemCommandHandler(uowFactory ItemUoWFactory) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns order.ErrOrderNotFound or order.ErrOrderItemNotFound when the
// target does not exist.
func (h UpdateOrderItemCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := lockOrder(ctx, uow.OrderRepository(), cmd.OrderID()); err != nil {
		return err
	}

	err := uow.OrderItemRepository().Update(ctx, cmd.OrderID(), cmd.ItemID(), cmd.Patch())
	if err != nil {
		return asNotFound(err, order.ErrOrderItemNotFound, "item %s", cmd.ItemID())
	}

	return uow.Commit(ctx)
}

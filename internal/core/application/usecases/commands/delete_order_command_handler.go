package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler soft-deletes an order in any status. Deleting an
// order twice reports order.ErrOrderNotFound, since deleted orders are not
// visible to the store.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	err := uow.OrderRepository().Update(ctx, cmd.OrderID(), order.OrderPatch{}.WithDeleted(true))
	if err != nil {
		return asNotFound(err, order.ErrOrderNotFound, "order %s", cmd.OrderID())
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

type UpdateOrderRemarkCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderRemarkCommandHandler(uowFactory OrderUoWFactory) UpdateOrderRemarkCommandHandler {
	return UpdateOrderRemarkCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateOrderRemarkCommandHandler) Handle(ctx context.Context, cmd UpdateOrderRemarkCommand) error {
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

	err := uow.OrderRepository().Update(ctx, cmd.OrderID(), order.OrderPatch{}.WithRemark(cmd.Remark()))
	if err != nil {
		return asNotFound(err, order.ErrOrderNotFound, "order %s", cmd.OrderID())
	}

	return uow.Commit(ctx)
}

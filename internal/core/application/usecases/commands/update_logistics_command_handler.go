package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

type UpdateLogisticsCommandHandler struct {
	uowFactory LogisticsUoWFactory
}

func NewUpdateLogisticsCommandHandler(uowFactory LogisticsUoWFactory) UpdateLogisticsCommandHandler {
	return UpdateLogisticsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns order.ErrLogisticsNotFound for an unknown shipment.
func (h UpdateLogisticsCommandHandler) Handle(ctx context.Context, cmd UpdateLogisticsCommand) error {
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

	err := uow.OrderLogisticsRepository().Update(ctx, cmd.LogisticsID(), cmd.Patch())
	if err != nil {
		return asNotFound(err, order.ErrLogisticsNotFound, "logistics %s", cmd.LogisticsID())
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
)

// ConfirmPaymentCommandHandler moves an unpaid order and its items to
// WAIT_SHIPMENT, which makes the items shippable.
type ConfirmPaymentCommandHandler struct {
	uowFactory UoWFactory
	now        Clock
}

func NewConfirmPaymentCommandHandler(uowFactory UoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := lockOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return err
	}

	next, err := o.Status.ConfirmPayment()
	if err != nil {
		return fmt.Errorf("order %s: %w: %w", o.ID, order.ErrInvalidStateForPayment, err)
	}

	if err = uow.OrderItemRepository().UpdateByOrder(ctx, o.ID, order.ItemPatch{}.
		WithStatus(order.ItemWaitShipment).
		WithPaymentTime(cmd.PaidAt())); err != nil {
		return err
	}

	patch := order.OrderPatch{}.
		WithStatus(next).
		WithPaymentTime(cmd.PaidAt()).
		WithExpectedVersion(o.Version)
	if err = orderRepo.Update(ctx, o.ID, patch); err != nil {
		return err
	}

	uow.Raise(order.NewEvent(order.EventOrderPaymentConfirmed, patch.Apply(*o), nil, h.now()))

	return uow.Commit(ctx)
}

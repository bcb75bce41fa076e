package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// CancelOrderCommandHandler closes an order that is still waiting for payment.
//
// In one transaction it closes every non-deleted item, closes the order and
// inserts the cancellation record. Orders in any other status are rejected
// with order.ErrInvalidStateForCancel and left unchanged.
//
// Example:
//
//	cmd, _ := NewCancelOrderCommand(orderID, order.CancelReasonBuyerRequested, "")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderNotFound):
//	    // 404
//	case errors.Is(err, order.ErrInvalidStateForCancel):
//	    // 409, already paid or closed
//	}
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	now        Clock
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	next, err := o.Status.Cancel()
	if err != nil {
		return fmt.Errorf("order %s: %w: %w", o.ID, order.ErrInvalidStateForCancel, err)
	}

	now := h.now()
	cancellation, err := order.NewCancellation(uuid.New(), o, cmd.Reason(), cmd.OtherReason(), now)
	if err != nil {
		return err
	}

	if err = uow.OrderItemRepository().UpdateByOrder(ctx, o.ID, order.ItemPatch{}.
		WithStatus(order.ItemClosed).
		WithClosingTime(now)); err != nil {
		return err
	}

	patch := order.OrderPatch{}.
		WithStatus(next).
		WithClosingTime(now).
		WithExpectedVersion(o.Version)
	if err = orderRepo.Update(ctx, o.ID, patch); err != nil {
		return err
	}

	if err = uow.OrderCancellationRepository().Add(ctx, cancellation); err != nil {
		return err
	}

	uow.Raise(order.NewEvent(order.EventOrderCancelled, patch.Apply(*o), nil, now))

	return uow.Commit(ctx)
}

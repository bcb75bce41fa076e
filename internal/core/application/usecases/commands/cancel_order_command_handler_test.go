package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newWaitingOrder(t)
	cmd, err := commands.NewCancelOrderCommand(o.ID, order.CancelReasonBuyerRequested, "wrong size")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	items := new(MockItemRepository)
	cancellations := new(MockCancellationRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, o.ID).Return(o, nil).Once(),
		uow.On("OrderItemRepository").Return(items).Once(),
		items.On("UpdateByOrder", ctx, o.ID, mock.MatchedBy(func(p order.ItemPatch) bool {
			status, ok := p.Status()
			_, closed := p.ClosingTime()
			return ok && status == order.ItemClosed && closed
		})).Return(nil).Once(),
		orders.On("Update", ctx, o.ID, mock.MatchedBy(func(p order.OrderPatch) bool {
			status, _ := p.Status()
			version, hasVersion := p.ExpectedVersion()
			_, closed := p.ClosingTime()
			return status == order.Closed && closed && hasVersion && version == o.Version
		})).Return(nil).Once(),
		uow.On("OrderCancellationRepository").Return(cancellations).Once(),
		cancellations.On("Add", ctx, mock.MatchedBy(func(c *order.Cancellation) bool {
			return c.OrderID == o.ID &&
				c.OrderNumber == o.Number &&
				c.Reason == order.CancelReasonBuyerRequested &&
				c.OtherReason == "wrong size"
		})).Return(nil).Once(),
		uow.On("Raise", mock.MatchedBy(func(events []order.Event) bool {
			return len(events) == 1 &&
				events[0].Type == order.EventOrderCancelled &&
				events[0].Status == order.Closed
		})).Return().Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	orders.AssertExpectations(t)
	items.AssertExpectations(t)
	cancellations.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_InvalidState(t *testing.T) {
	for _, status := range []order.Status{order.WaitShipment, order.AlreadyShipment, order.Completed, order.Closed} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			o := newOrderInStatus(t, status)
			cmd, err := commands.NewCancelOrderCommand(o.ID, order.CancelReasonOther, "")
			require.NoError(t, err)

			orders := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockUoWFactory)

			mock.InOrder(
				factory.On("Create").Return(uow).Once(),
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orders).Once(),
				orders.On("GetForUpdate", ctx, o.ID).Return(o, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			err = commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

			require.ErrorIs(t, err, order.ErrInvalidStateForCancel)
			require.ErrorIs(t, err, errs.ErrInvalidState)
			code, ok := errs.Code(err)
			require.True(t, ok)
			assert.Equal(t, "INVALID_STATE_FOR_CANCEL", code)
			orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			uow.AssertExpectations(t)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := uuid.New()
	cmd, err := commands.NewCancelOrderCommand(orderID, order.CancelReasonBuyerRequested, "")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.Contains(t, err.Error(), orderID.String())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(uuid.New(), order.CancelReasonBuyerRequested, "")
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	err = commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	o := newWaitingOrder(t)
	cmd, err := commands.NewCancelOrderCommand(o.ID, order.CancelReasonPaymentTimeout, "")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	items := new(MockItemRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, o.ID).Return(o, nil).Once(),
		uow.On("OrderItemRepository").Return(items).Once(),
		items.On("UpdateByOrder", ctx, o.ID, mock.Anything).Return(nil).Once(),
		orders.On("Update", ctx, o.ID, mock.Anything).
			Return(errs.NewConcurrentModificationError("order", o.ID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	uow.AssertNotCalled(t, "Raise", mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockUoWFactory)

	err := commands.NewCancelOrderCommandHandler(factory).Handle(t.Context(), commands.CancelOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

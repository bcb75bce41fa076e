package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newWaitingOrder(t)
	itemID := uuid.New()
	patch := order.ItemPatch{}.WithQuantity(3).WithDeliveryType(order.DeliverySelfPickup)
	cmd, err := commands.NewUpdateOrderItemCommand(o.ID, itemID, patch)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	items := new(MockItemRepository)
	uow := new(MockUoW)
	factory := new(MockItemUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, o.ID).Return(o, nil).Once(),
		uow.On("OrderItemRepository").Return(items).Once(),
		items.On("Update", ctx, o.ID, itemID, patch).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewUpdateOrderItemCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	items.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	o := newWaitingOrder(t)
	itemID := uuid.New()
	cmd, err := commands.NewUpdateOrderItemCommand(o.ID, itemID, order.ItemPatch{}.WithPrice(10))
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	items := new(MockItemRepository)
	uow := new(MockUoW)
	factory := new(MockItemUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("GetForUpdate", ctx, o.ID).Return(o, nil).Once()
	uow.On("OrderItemRepository").Return(items).Once()
	items.On("Update", ctx, o.ID, itemID, mock.Anything).Return(errs.NewObjectNotFoundError("order item", itemID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewUpdateOrderItemCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderItemNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderItemsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newWaitingOrder(t)
	removed := newItem(t, o, order.ItemWaitingPayment, 1, 400)
	kept := newItem(t, o, order.ItemWaitingPayment, 3, 100)

	cmd, err := commands.NewDeleteOrderItemsCommand(o.ID, []uuid.UUID{removed.ID})
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
		items.On("ListByOrder", ctx, o.ID, false).Return([]*order.Item{removed, kept}, nil).Once(),
		items.On("UpdateByIDs", ctx, o.ID, []uuid.UUID{removed.ID}, order.ItemPatch{}.WithDeleted(true)).
			Return(nil).Once(),
		orders.On("Update", ctx, o.ID, order.OrderPatch{}.
			WithPayAmount(300).
			WithExpectedVersion(o.Version)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	total, err := commands.NewDeleteOrderItemsCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(300), total)
	orders.AssertExpectations(t)
	items.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderItemsCommandHandler_Handle_ShipsOrderWhenLastOutstandingItemRemoved(t *testing.T) {
	ctx := t.Context()
	o := newOrderInStatus(t, order.WaitShipment)
	shipped := newItem(t, o, order.ItemAlreadyShipment, 1, 400)
	outstanding := newItem(t, o, order.ItemWaitShipment, 1, 100)

	cmd, err := commands.NewDeleteOrderItemsCommand(o.ID, []uuid.UUID{outstanding.ID})
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
		items.On("ListByOrder", ctx, o.ID, false).Return([]*order.Item{shipped, outstanding}, nil).Once(),
		items.On("UpdateByIDs", ctx, o.ID, []uuid.UUID{outstanding.ID}, order.ItemPatch{}.WithDeleted(true)).
			Return(nil).Once(),
		orders.On("Update", ctx, o.ID, mock.MatchedBy(func(p order.OrderPatch) bool {
			status, hasStatus := p.Status()
			total, _ := p.PayAmount()
			_, hasDeliveryTime := p.DeliveryTime()
			return hasStatus && status == order.AlreadyShipment && hasDeliveryTime && total == 400
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	total, err := commands.NewDeleteOrderItemsCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(400), total)
	orders.AssertExpectations(t)
	items.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderItemsCommandHandler_Handle_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		requested func(items []*order.Item) []uuid.UUID
		wantErr   error
	}{
		{
			name: "every item removed",
			requested: func(items []*order.Item) []uuid.UUID {
				return []uuid.UUID{items[0].ID, items[1].ID}
			},
			wantErr: order.ErrOrderMustHaveAtLeastOneItem,
		},
		{
			name: "every item removed with an unknown id",
			requested: func(items []*order.Item) []uuid.UUID {
				return []uuid.UUID{items[0].ID, items[1].ID, uuid.New()}
			},
			wantErr: order.ErrOrderMustHaveAtLeastOneItem,
		},
		{
			name: "foreign item",
			requested: func(items []*order.Item) []uuid.UUID {
				return []uuid.UUID{items[0].ID, uuid.New()}
			},
			wantErr: order.ErrOrderItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := newWaitingOrder(t)
			loaded := []*order.Item{
				newItem(t, o, order.ItemWaitingPayment, 1, 100),
				newItem(t, o, order.ItemWaitingPayment, 1, 100),
			}
			cmd, err := commands.NewDeleteOrderItemsCommand(o.ID, tt.requested(loaded))
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
			items.On("ListByOrder", ctx, o.ID, false).Return(loaded, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			_, err = commands.NewDeleteOrderItemsCommandHandler(factory).Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			items.AssertNotCalled(t, "UpdateByIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			uow.AssertExpectations(t)
		})
	}
}

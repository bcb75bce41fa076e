package queries_test

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, id uuid.UUID, patch order.OrderPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter ports.OrderFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindExpiredUnpaid(
	ctx context.Context,
	createdBefore time.Time,
	limit int,
) ([]uuid.UUID, error) {
	args := m.Called(ctx, createdBefore, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) AddAll(ctx context.Context, items []*order.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockItemRepository) ListByOrder(ctx context.Context, orderID uuid.UUID, deleted bool) ([]*order.Item, error) {
	args := m.Called(ctx, orderID, deleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Item), args.Error(1)
}

func (m *MockItemRepository) ListByOrders(
	ctx context.Context,
	orderIDs []uuid.UUID,
	deleted bool,
) ([]*order.Item, error) {
	args := m.Called(ctx, orderIDs, deleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, orderID, itemID uuid.UUID, patch order.ItemPatch) error {
	args := m.Called(ctx, orderID, itemID, patch)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateByIDs(
	ctx context.Context,
	orderID uuid.UUID,
	itemIDs []uuid.UUID,
	patch order.ItemPatch,
) error {
	args := m.Called(ctx, orderID, itemIDs, patch)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateByOrder(ctx context.Context, orderID uuid.UUID, patch order.ItemPatch) error {
	args := m.Called(ctx, orderID, patch)
	return args.Error(0)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Add(ctx context.Context, recipient *order.Recipient) error {
	args := m.Called(ctx, recipient)
	return args.Error(0)
}

func (m *MockRecipientRepository) GetByOrder(ctx context.Context, orderID uuid.UUID) (*order.Recipient, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Recipient), args.Error(1)
}

func (m *MockRecipientRepository) ListByOrders(ctx context.Context, orderIDs []uuid.UUID) ([]*order.Recipient, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Recipient), args.Error(1)
}

type MockLogisticsRepository struct{ mock.Mock }

func (m *MockLogisticsRepository) Add(ctx context.Context, logistics *order.Logistics) error {
	args := m.Called(ctx, logistics)
	return args.Error(0)
}

func (m *MockLogisticsRepository) Get(ctx context.Context, id uuid.UUID) (*order.Logistics, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Logistics), args.Error(1)
}

func (m *MockLogisticsRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*order.Logistics, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Logistics), args.Error(1)
}

func (m *MockLogisticsRepository) Update(ctx context.Context, id uuid.UUID, patch order.LogisticsPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

type MockCancellationRepository struct{ mock.Mock }

func (m *MockCancellationRepository) Add(ctx context.Context, cancellation *order.Cancellation) error {
	args := m.Called(ctx, cancellation)
	return args.Error(0)
}

func (m *MockCancellationRepository) GetByOrder(ctx context.Context, orderID uuid.UUID) (*order.Cancellation, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Cancellation), args.Error(1)
}

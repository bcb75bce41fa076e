package commands_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

// MockUoW satisfies every unit of work variant the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Raise(events ...order.Event) {
	m.Called(events)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrderItemRepository() ports.OrderItemRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderItemRepository)
}

func (m *MockUoW) OrderRecipientRepository() ports.OrderRecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRecipientRepository)
}

func (m *MockUoW) OrderLogisticsRepository() ports.OrderLogisticsRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderLogisticsRepository)
}

func (m *MockUoW) OrderCancellationRepository() ports.OrderCancellationRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderCancellationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

type MockLogisticsUoWFactory struct{ mock.Mock }

func (m *MockLogisticsUoWFactory) Create() commands.LogisticsUoW {
	args := m.Called()
	return args.Get(0).(commands.LogisticsUoW)
}

type MockCatalogService struct{ mock.Mock }

func (m *MockCatalogService) GetPricedSkus(ctx context.Context, skuIDs []string) ([]ports.PricedSku, error) {
	args := m.Called(ctx, skuIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.PricedSku), args.Error(1)
}

type MockAddressService struct{ mock.Mock }

func (m *MockAddressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (order.Address, error) {
	args := m.Called(ctx, userID, addressID)
	return args.Get(0).(order.Address), args.Error(1)
}

type MockPaymentService struct{ mock.Mock }

func (m *MockPaymentService) CreatePendingTransaction(
	ctx context.Context,
	tx ports.PendingTransaction,
) (ports.TransactionHandle, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(ports.TransactionHandle), args.Error(1)
}

type MockOrderNumberGenerator struct{ mock.Mock }

func (m *MockOrderNumberGenerator) Next(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Test data builders.

const testOrderNumber = "20260301070000000042"

func newWaitingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(uuid.New(), testOrderNumber, uuid.New(), 0, "", time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newWaitingOrder(t)
	o.Status = status
	return o
}

func newItem(t *testing.T, o *order.Order, status order.ItemStatus, quantity int, price int64) *order.Item {
	t.Helper()
	item, err := order.NewItem(uuid.New(), o, order.SkuSnapshot{
		SkuID: uuid.NewString(),
		Name:  "sku",
		Price: price,
	}, quantity, time.Now().UTC())
	require.NoError(t, err)
	item.Status = status
	return item
}

func newRecipient(t *testing.T, o *order.Order) *order.Recipient {
	t.Helper()
	recipient, err := order.NewRecipient(uuid.New(), o.ID, order.Address{
		Name:   "Jane Roe",
		Mobile: "+15550100",
		Detail: "1 Main St",
	}, time.Now().UTC())
	require.NoError(t, err)
	return recipient
}

func sameIDs(expected ...uuid.UUID) any {
	return mock.MatchedBy(func(ids []uuid.UUID) bool {
		if len(ids) != len(expected) {
			return false
		}
		set := make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		for _, id := range expected {
			if _, ok := set[id]; !ok {
				return false
			}
		}
		return true
	})
}

func eventOfType(eventType order.EventType) any {
	return mock.MatchedBy(func(events []order.Event) bool {
		return len(events) == 1 && events[0].Type == eventType
	})
}

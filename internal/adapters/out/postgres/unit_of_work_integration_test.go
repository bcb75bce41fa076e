package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/migrations"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL whose schema comes from the embedded migrations.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *mockEventPublisher
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(sqlDB))

	version, dirty, err := migrations.Version(sqlDB)
	suite.Require().NoError(err)
	suite.Equal(uint(1), version)
	suite.False(dirty)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE order_cancellations, order_logistics, order_recipients, order_items, orders").Error
	suite.Require().NoError(err)

	suite.publisher = new(mockEventPublisher)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, nil)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWritesAggregateAtomically() {
	ctx := context.Background()
	o, items, recipient := suite.newAggregate()
	event := order.NewEvent(order.EventOrderCreated, *o, nil, o.CreatedAt)

	suite.publisher.On("Publish", mock.Anything, []order.Event{event}).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.OrderItemRepository().AddAll(ctx, items))
	suite.Require().NoError(uow.OrderRecipientRepository().Add(ctx, recipient))
	uow.Raise(event)

	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	stored, err := reader.OrderItemRepository().ListByOrder(ctx, o.ID, false)
	suite.Require().NoError(err)
	suite.Len(stored, 2)
	_, err = reader.OrderRecipientRepository().GetByOrder(ctx, o.ID)
	suite.Require().NoError(err)

	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWritesAndEvents() {
	ctx := context.Background()
	o, items, _ := suite.newAggregate()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.OrderItemRepository().AddAll(ctx, items))
	uow.Raise(order.NewEvent(order.EventOrderCreated, *o, nil, o.CreatedAt))

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err := reader.OrderRepository().Get(ctx, o.ID)
	suite.Require().Error(err, "Order should not exist after rollback")
	stored, err := reader.OrderItemRepository().ListByOrder(ctx, o.ID, false)
	suite.Require().NoError(err)
	suite.Empty(stored)

	// events raised before the rollback must not leak into the next commit
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureKeepsCommit() {
	ctx := context.Background()
	o, _, _ := suite.newAggregate()

	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	uow.Raise(order.NewEvent(order.EventOrderCreated, *o, nil, o.CreatedAt))

	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID)
	suite.Require().NoError(err)
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Isolation() {
	ctx := context.Background()
	first, _, _ := suite.newAggregate()
	second, _, _ := suite.newAggregate()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, first))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, second))

	_, err := uow1.OrderRepository().Get(ctx, second.ID)
	suite.Require().Error(err, "UOW1 should not see the uncommitted order of UOW2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, first.ID)
	suite.Require().NoError(err)
	_, err = reader.OrderRepository().Get(ctx, second.ID)
	suite.Require().Error(err)
}

// TestUnitOfWork_GetForUpdateSerializesWriters holds the row lock in one unit
// of work and checks that a second locker waits for the commit and then sees
// the committed version.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetForUpdateSerializesWriters() {
	ctx := context.Background()
	o, _, _ := suite.newAggregate()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	_, err := holder.OrderRepository().GetForUpdate(ctx, o.ID)
	suite.Require().NoError(err)

	acquired := make(chan *order.Order, 1)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		waiter := suite.factory.Create()
		if err := waiter.Begin(gctx); err != nil {
			return err
		}
		defer func() { _ = waiter.Rollback(gctx) }()

		locked, err := waiter.OrderRepository().GetForUpdate(gctx, o.ID)
		if err != nil {
			return err
		}
		acquired <- locked
		return waiter.Commit(gctx)
	})

	select {
	case <-acquired:
		suite.Fail("second writer acquired the lock while it was held")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(holder.OrderRepository().Update(ctx, o.ID, order.OrderPatch{}.WithRemark("first")))
	suite.Require().NoError(holder.Commit(ctx))

	suite.Require().NoError(g.Wait())
	locked := <-acquired
	suite.Equal("first", locked.Remark)
	suite.Equal(2, locked.Version)
}

func (suite *UnitOfWorkIntegrationTestSuite) newAggregate() (*order.Order, []*order.Item, *order.Recipient) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	number := strings.ReplaceAll(uuid.NewString(), "-", "")[:20]

	o, err := order.NewOrder(uuid.New(), number, uuid.New(), 500, "", now)
	suite.Require().NoError(err)

	items := make([]*order.Item, 0, 2)
	for _, sku := range []order.SkuSnapshot{
		{SkuID: "SKU-A", Name: "Kettle", Price: 200},
		{SkuID: "SKU-B", Name: "Mug", Price: 300},
	} {
		item, err := order.NewItem(uuid.New(), o, sku, 1, now)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	recipient, err := order.NewRecipient(uuid.New(), o.ID,
		order.Address{Name: "Ann", Mobile: "+100200300", Detail: "1 Main St"}, now)
	suite.Require().NoError(err)
	return o, items, recipient
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

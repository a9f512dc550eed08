package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"sewrica/internal/adapters/out/postgres/orderrepo"
	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// OrderRepositoryIntegrationTestSuite exercises the order repository
// against a real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.StatusChangeDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_status_history").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(method order.PaymentMethod) *order.Order {
	doroPrice, err := kernel.NewMoney(10000)
	suite.Require().NoError(err)
	tibsPrice, err := kernel.NewMoney(5000)
	suite.Require().NoError(err)
	doro, err := order.NewItem(kernel.NewUUID(), "Doro Wat", "ዶሮ ወጥ", doroPrice, 2)
	suite.Require().NoError(err)
	tibs, err := order.NewItem(kernel.NewUUID(), "Tibs", "ጥብስ", tibsPrice, 1)
	suite.Require().NoError(err)
	customer, err := order.NewCustomer("Abel Tesfaye", "+251911234567", "abel@example.com",
		order.FulfillmentDelivery, "Bole Road 12, Addis Ababa")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), []order.Item{doro, tibs}, customer, method, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.newOrder(order.MethodCard)

	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	stored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(stored.ID().IsEqual(aggregate.ID()))
	suite.Equal(order.StatusPending, stored.Status())
	suite.Equal(order.PaymentUnpaid, stored.PaymentStatus())
	suite.Equal(order.MethodCard, stored.PaymentMethod())
	suite.Equal(int64(25000), stored.TotalAmount().Amount())
	suite.Len(stored.Items(), 2)
	suite.Equal("Doro Wat", stored.Items()[0].Name())
	suite.Equal("ዶሮ ወጥ", stored.Items()[0].NameAm())
	suite.Equal("Abel Tesfaye", stored.Customer().Name())
	suite.Len(stored.History(), 1)
	suite.Equal(1, stored.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndAssignments() {
	ctx := context.Background()
	aggregate := suite.newOrder(order.MethodCash)
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	now := time.Now().UTC()
	chefID := kernel.NewUUID()
	suite.Require().NoError(aggregate.Confirm(now))
	suite.Require().NoError(aggregate.AssignChef(chefID, now, "rush order"))
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	stored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, stored.Status())
	suite.Require().NotNil(stored.Chef())
	suite.True(stored.Chef().StaffID.IsEqual(chefID))
	suite.Equal("rush order", stored.Chef().Notes)
	suite.Len(stored.History(), 2)
	suite.Equal(2, stored.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_VersionConflict() {
	ctx := context.Background()
	aggregate := suite.newOrder(order.MethodCash)
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	// Two readers load the same version.
	first, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	now := time.Now().UTC()
	suite.Require().NoError(first.Confirm(now))
	suite.Require().NoError(suite.repo.Update(ctx, first))

	suite.Require().NoError(second.Cancel(now, false))
	err = suite.repo.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	stored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, stored.Status(), "stale writer must not overwrite")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus() {
	ctx := context.Background()

	pending := suite.newOrder(order.MethodCash)
	confirmed := suite.newOrder(order.MethodCash)
	suite.Require().NoError(suite.repo.Add(ctx, pending))
	suite.Require().NoError(suite.repo.Add(ctx, confirmed))
	suite.Require().NoError(confirmed.Confirm(time.Now().UTC()))
	suite.Require().NoError(suite.repo.Update(ctx, confirmed))

	inPending, err := suite.repo.GetAllInStatus(ctx, order.StatusPending)
	suite.Require().NoError(err)
	suite.Len(inPending, 1)
	suite.True(inPending[0].ID().IsEqual(pending.ID()))

	all, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"sewrica/internal/adapters/out/postgres/orderrepo"
	"sewrica/internal/core/application/usecases/queries"
	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, dsn, err := startPostgres(ctx)
	suite.Require().NoError(err)
	suite.container = container

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.StatusChangeDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsFullReadModel() {
	ctx := context.Background()
	createdAt := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)

	aggregate, err := buildTestOrder(order.MethodCash, createdAt, 20000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	chefID := kernel.NewUUID()
	suite.Require().NoError(aggregate.Confirm(createdAt.Add(time.Minute)))
	suite.Require().NoError(aggregate.AssignChef(chefID, createdAt.Add(2*time.Minute), "rush"))
	suite.Require().NoError(suite.orderRepo.Update(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), result.ID)
	suite.Equal("confirmed", result.Status)
	suite.Equal("cash", result.PaymentMethod)
	suite.Equal("unpaid", result.PaymentStatus)
	suite.Equal("Abel Tesfaye", result.CustomerName)
	suite.Equal("delivery", result.Fulfillment)
	suite.Equal("Bole Road 12, Addis Ababa", result.Address)
	suite.Equal(int64(20000), result.TotalAmount)

	suite.Require().Len(result.Items, 1)
	suite.Equal("Doro Wat", result.Items[0].Name)
	suite.Equal("ዶሮ ወጥ", result.Items[0].NameAm)
	suite.Equal(int64(20000), result.Items[0].LineTotal)

	suite.Require().Len(result.History, 2)
	suite.Equal("pending", result.History[0].Status)
	suite.Equal("confirmed", result.History[1].Status)

	suite.Require().NotNil(result.Chef)
	suite.Equal(chefID, result.Chef.StaffID)
	suite.Equal("rush", result.Chef.Notes)
	suite.Nil(result.Delivery)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}

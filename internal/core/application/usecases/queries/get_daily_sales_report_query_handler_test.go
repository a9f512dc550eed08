package queries_test

import (
	"context"
	"testing"
	"time"

	"sewrica/internal/adapters/out/postgres/orderrepo"
	"sewrica/internal/adapters/out/postgres/paymentrepo"
	"sewrica/internal/core/application/usecases/queries"
	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/payment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDailySalesReportQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetDailySalesReportQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
	paymentRepo *paymentrepo.GormPaymentRepository
}

func (suite *GetDailySalesReportQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, dsn, err := startPostgres(ctx)
	suite.Require().NoError(err)
	suite.container = container

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&paymentrepo.PaymentDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDailySalesReportQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.paymentRepo = paymentrepo.NewGormPaymentRepository(db)
}

func (suite *GetDailySalesReportQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDailySalesReportQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE payments").Error
	suite.Require().NoError(err)
}

func (suite *GetDailySalesReportQueryHandlerTestSuite) addSettledOrder(
	method order.PaymentMethod,
	createdAt time.Time,
	total int64,
) *order.Order {
	ctx := context.Background()

	aggregate, err := buildTestOrder(method, createdAt, total)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	var received, change *kernel.Money
	reference := ""
	switch method {
	case order.MethodCash:
		amount, err := kernel.NewMoney(total)
		suite.Require().NoError(err)
		zero, err := kernel.NewMoney(0)
		suite.Require().NoError(err)
		received, change = &amount, &zero
	case order.MethodCard:
		reference = "pi_" + aggregate.ID().String()
	default:
		reference = "TB-" + aggregate.ID().String()
	}

	record, err := payment.NewRecord(
		kernel.NewUUID(), aggregate.ID(), method, reference,
		received, change, createdAt.Add(10*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.paymentRepo.Add(ctx, record))

	return aggregate
}

func (suite *GetDailySalesReportQueryHandlerTestSuite) TestHandle_AggregatesDay() {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	suite.addSettledOrder(order.MethodCash, day.Add(10*time.Hour), 20000)
	suite.addSettledOrder(order.MethodCash, day.Add(12*time.Hour), 5000)
	suite.addSettledOrder(order.MethodCard, day.Add(13*time.Hour), 15000)
	// The previous day's takings stay out of this report.
	suite.addSettledOrder(order.MethodCash, day.Add(-5*time.Hour), 99000)

	query, err := queries.NewGetDailySalesReportQuery(day)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(40000), result.TotalRevenue)

	suite.Require().Len(result.ByMethod, 2)
	suite.Equal("card", result.ByMethod[0].Method)
	suite.Equal(1, result.ByMethod[0].Orders)
	suite.Equal(int64(15000), result.ByMethod[0].Revenue)
	suite.Equal("cash", result.ByMethod[1].Method)
	suite.Equal(2, result.ByMethod[1].Orders)
	suite.Equal(int64(25000), result.ByMethod[1].Revenue)

	suite.Require().Len(result.ByStatus, 1)
	suite.Equal("pending", result.ByStatus[0].Status)
	suite.Equal(3, result.ByStatus[0].Count)
}

func (suite *GetDailySalesReportQueryHandlerTestSuite) TestHandle_EmptyDay() {
	query, err := queries.NewGetDailySalesReportQuery(time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Zero(result.TotalRevenue)
	suite.Empty(result.ByMethod)
	suite.Empty(result.ByStatus)
}

func (suite *GetDailySalesReportQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDailySalesReportQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
}

func TestGetDailySalesReportQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDailySalesReportQueryHandlerTestSuite))
}

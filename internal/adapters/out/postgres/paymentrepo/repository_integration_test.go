package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"sewrica/internal/adapters/out/postgres/paymentrepo"
	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/payment"
	"sewrica/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *paymentrepo.GormPaymentRepository
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&paymentrepo.PaymentDTO{})
	suite.Require().NoError(err)

	suite.repo = paymentrepo.NewGormPaymentRepository(db)
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE payments").Error
	suite.Require().NoError(err)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) cashRecord(orderID kernel.UUID) *payment.Record {
	received, err := kernel.NewMoney(30000)
	suite.Require().NoError(err)
	change, err := kernel.NewMoney(10000)
	suite.Require().NoError(err)

	record, err := payment.NewRecord(kernel.NewUUID(), orderID, order.MethodCash, "",
		&received, &change, time.Now().UTC())
	suite.Require().NoError(err)
	return record
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAddAndGetByOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	record := suite.cashRecord(orderID)

	err := suite.repo.Add(ctx, record)
	suite.Require().NoError(err)

	stored, err := suite.repo.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(record.ID(), stored.ID())
	suite.Equal(order.MethodCash, stored.Method())
	suite.Require().NotNil(stored.AmountReceived())
	suite.Equal(int64(30000), stored.AmountReceived().Amount())
	suite.Require().NotNil(stored.Change())
	suite.Equal(int64(10000), stored.Change().Amount())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByOrder_NotSettled() {
	_, err := suite.repo.GetByOrder(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByReference() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	record, err := payment.NewRecord(kernel.NewUUID(), orderID, order.MethodCard, "pi_123",
		nil, nil, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, record))

	stored, err := suite.repo.GetByReference(ctx, "pi_123")
	suite.Require().NoError(err)
	suite.Equal(record.ID(), stored.ID())
	suite.Equal("pi_123", stored.ExternalReference())
	suite.Nil(stored.AmountReceived())

	_, err = suite.repo.GetByReference(ctx, "pi_unknown")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}

package commands_test

import (
	"context"
	"testing"

	"sewrica/internal/core/application/usecases/commands"
	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/payment"
	"sewrica/internal/core/domain/services"
	"sewrica/internal/core/ports"
	"sewrica/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, record *payment.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Record, error) {
	args := m.Called(ctx, orderID)
	if record, ok := args.Get(0).(*payment.Record); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockPaymentRepository) GetByReference(ctx context.Context, reference string) (*payment.Record, error) {
	args := m.Called(ctx, reference)
	if record, ok := args.Get(0).(*payment.Record); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderPaymentUoW struct{ mock.Mock }

func (m *MockOrderPaymentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderPaymentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderPaymentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderPaymentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderPaymentUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockOrderPaymentUoWFactory struct{ mock.Mock }

func (m *MockOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderPaymentUoW)
}

type MockCardProcessor struct{ mock.Mock }

func (m *MockCardProcessor) CreateIntent(ctx context.Context, orderID kernel.UUID, amount kernel.Money) (services.CardIntent, error) {
	args := m.Called(ctx, orderID, amount)
	return args.Get(0).(services.CardIntent), args.Error(1)
}

func testStrategies(t *testing.T) services.PaymentStrategySet {
	t.Helper()
	set, err := services.NewPaymentStrategySet(new(MockCardProcessor), services.MobileMoneyConfig{
		Recipient: "Sewrica Restaurant",
		Account:   "+251900000000",
		DialCode:  "*127#",
	})
	require.NoError(t, err)
	return set
}

func mustCashMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestRecordCashPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.MethodCash) // total 200.00
	cmd, err := commands.NewRecordCashPaymentCommand(stored.ID(), mustCashMoney(t, 30000))
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetByOrder", mock.Anything, stored.ID()).Return(nil, errs.NewObjectNotFoundError("order", stored.ID())).Once()
	paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Record")).Return(nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	orderRepo.On("Update", mock.Anything, stored).Return(nil).Once()

	uow := new(MockOrderPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordCashPaymentCommandHandler(factory, testStrategies(t))
	record, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, record)
	require.NotNil(t, record.Change())
	assert.Equal(t, int64(10000), record.Change().Amount())
	assert.Equal(t, order.PaymentCompleted, stored.PaymentStatus())
}

func TestRecordCashPaymentCommandHandler_Handle_InsufficientAmount(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.MethodCash)
	cmd, err := commands.NewRecordCashPaymentCommand(stored.ID(), mustCashMoney(t, 5000))
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetByOrder", mock.Anything, stored.ID()).Return(nil, errs.NewObjectNotFoundError("order", stored.ID())).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

	uow := new(MockOrderPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordCashPaymentCommandHandler(factory, testStrategies(t))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrInsufficientAmount)
	paymentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, order.PaymentUnpaid, stored.PaymentStatus())
}

func TestRecordCashPaymentCommandHandler_Handle_AlreadySettled(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.MethodCash)
	received := mustCashMoney(t, 20000)
	change := mustCashMoney(t, 0)
	existing, err := payment.NewRecord(kernel.NewUUID(), stored.ID(), order.MethodCash, "", &received, &change, stored.CreatedAt())
	require.NoError(t, err)
	cmd, err := commands.NewRecordCashPaymentCommand(stored.ID(), received)
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetByOrder", mock.Anything, stored.ID()).Return(existing, nil).Once()

	uow := new(MockOrderPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordCashPaymentCommandHandler(factory, testStrategies(t))
	record, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, existing, record)
	paymentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

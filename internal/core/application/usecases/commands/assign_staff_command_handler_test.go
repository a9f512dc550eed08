package commands_test

import (
	"context"
	"errors"
	"testing"

	"sewrica/internal/core/application/usecases/commands"
	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/staff"
	"sewrica/internal/core/domain/services"
	"sewrica/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, member *staff.StaffMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.StaffMember, error) {
	args := m.Called(ctx, id)
	if member, ok := args.Get(0).(*staff.StaffMember); ok {
		return member, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockStaffRepository) GetAllByRole(_ context.Context, _ staff.Role) ([]*staff.StaffMember, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStaffRepository) GetWorkloads(_ context.Context, _ staff.Role) ([]ports.StaffWorkload, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderStaffUoW struct{ mock.Mock }

func (m *MockOrderStaffUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderStaffUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderStaffUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderStaffUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderStaffUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockOrderStaffUoWFactory struct{ mock.Mock }

func (m *MockOrderStaffUoWFactory) Create() commands.OrderStaffUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStaffUoW)
}

func TestAssignStaffCommandHandler_Handle_AssignsChef(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.MethodCash)
	chef, err := staff.NewStaffMember(kernel.NewUUID(), "Marta", staff.RoleChef)
	require.NoError(t, err)
	cmd, err := commands.NewAssignStaffCommand(stored.ID(), chef.ID(), staff.RoleChef, "tall order")
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", mock.Anything, chef.ID()).Return(chef, nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	orderRepo.On("Update", mock.Anything, stored).Return(nil).Once()

	uow := new(MockOrderStaffUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignStaffCommandHandler(factory, services.NewStaffDispatcher())
	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, stored.Chef())
	assert.True(t, stored.Chef().StaffID.IsEqual(chef.ID()))
	assert.Equal(t, "tall order", stored.Chef().Notes)
}

func TestAssignStaffCommandHandler_Handle_RoleMismatch(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.MethodCash)
	rider, err := staff.NewStaffMember(kernel.NewUUID(), "Dawit", staff.RoleDelivery)
	require.NoError(t, err)
	cmd, err := commands.NewAssignStaffCommand(stored.ID(), rider.ID(), staff.RoleChef, "")
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", mock.Anything, rider.ID()).Return(rider, nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

	uow := new(MockOrderStaffUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignStaffCommandHandler(factory, services.NewStaffDispatcher())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrRoleMismatch)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignStaffCommandHandler_Handle_StaffNotFound(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.MethodCash)
	missingID := kernel.NewUUID()
	cmd, err := commands.NewAssignStaffCommand(stored.ID(), missingID, staff.RoleChef, "")
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", mock.Anything, missingID).Return(nil, errors.New("staff not found")).Once()

	uow := new(MockOrderStaffUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignStaffCommandHandler(factory, services.NewStaffDispatcher())
	require.Error(t, h.Handle(ctx, cmd))
}

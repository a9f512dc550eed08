package commands_test

import (
	"context"
	"testing"

	"sewrica/internal/core/application/usecases/commands"
	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/staff"
	"sewrica/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStaffUoW struct{ mock.Mock }

func (m *MockStaffUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStaffUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStaffUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}

func TestNewCreateStaffCommand_Validation(t *testing.T) {
	_, err := commands.NewCreateStaffCommand(kernel.NewUUID(), "", staff.RoleChef)
	require.Error(t, err)
	assert.ErrorIs(t, err, staff.ErrNameIsRequired)

	_, err = commands.NewCreateStaffCommand(kernel.NewUUID(), "Marta", staff.Role(0))
	require.Error(t, err)
}

func TestCreateStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateStaffCommand(kernel.NewUUID(), "Marta", staff.RoleChef)
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*staff.StaffMember")).Return(nil).Once()
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStaffCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

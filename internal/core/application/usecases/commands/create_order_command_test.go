package commands_test

import (
	"testing"

	"sewrica/internal/core/application/usecases/commands"
	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	items := testOrderItems(t)
	customer := testOrderCustomer(t)

	cmd, err := commands.NewCreateOrderCommand(id, items, customer, order.MethodCard)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Len(t, cmd.Items(), len(items))
	assert.Equal(t, customer, cmd.Customer())
	assert.Equal(t, order.MethodCard, cmd.Method())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, testOrderItems(t), testOrderCustomer(t), order.MethodCash)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, testOrderCustomer(t), order.MethodCash)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidMethod(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), testOrderItems(t), testOrderCustomer(t), order.PaymentMethod(0))
	require.Error(t, err)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

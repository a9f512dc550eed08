package commands

import (
	"errors"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels an order. Anyone may cancel a pending or
// confirmed order; cancelling one already in the kitchen (preparing or
// ready) is a privileged admin action.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	privileged bool

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command. The privileged flag
// reflects the caller's role at the boundary.
func NewCancelOrderCommand(orderID kernel.UUID, privileged bool) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}
	cmd.privileged = privileged

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Privileged reports whether the caller may cancel in-kitchen orders.
func (c CancelOrderCommand) Privileged() bool {
	return c.privileged
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

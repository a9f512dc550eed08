package commands

import (
	"errors"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/pkg/errs"
	"sewrica/internal/pkg/guard"
)

var ErrConfirmMobileMoneyCommandIsNotConstructed = errors.New(
	"ConfirmMobileMoneyCommand must be created via NewConfirmMobileMoneyCommand constructor",
)

// ConfirmMobileMoneyCommand records an operator-verified mobile money
// transfer against an order. The operator enters the transfer reference
// after sighting the money on the merchant account.
type ConfirmMobileMoneyCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reference string

	guard guard.ConstructorGuard
}

// NewConfirmMobileMoneyCommand creates a mobile money confirmation command.
func NewConfirmMobileMoneyCommand(orderID kernel.UUID, reference string) (ConfirmMobileMoneyCommand, error) {
	cmd := ConfirmMobileMoneyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReference(reference),
	); err != nil {
		return ConfirmMobileMoneyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmMobileMoneyCommand) Validate() error {
	return c.guard.Validate(ErrConfirmMobileMoneyCommandIsNotConstructed)
}

// OrderID returns the order being settled.
func (c ConfirmMobileMoneyCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reference returns the sighted transfer reference.
func (c ConfirmMobileMoneyCommand) Reference() string {
	return c.reference
}

func (c *ConfirmMobileMoneyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmMobileMoneyCommand) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}

	c.reference = reference
	return nil
}

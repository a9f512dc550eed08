package commands

import (
	"errors"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/pkg/guard"
)

var ErrRecordCashPaymentCommandIsNotConstructed = errors.New(
	"RecordCashPaymentCommand must be created via NewRecordCashPaymentCommand constructor",
)

// RecordCashPaymentCommand settles an order in cash at handover, recording
// the amount the customer handed over.
type RecordCashPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	amountReceived kernel.Money

	guard guard.ConstructorGuard
}

// NewRecordCashPaymentCommand creates a cash settlement command.
func NewRecordCashPaymentCommand(orderID kernel.UUID, amountReceived kernel.Money) (RecordCashPaymentCommand, error) {
	cmd := RecordCashPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RecordCashPaymentCommand{}, err
	}
	cmd.amountReceived = amountReceived

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCashPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordCashPaymentCommandIsNotConstructed)
}

// OrderID returns the order being settled.
func (c RecordCashPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AmountReceived returns the cash handed over.
func (c RecordCashPaymentCommand) AmountReceived() kernel.Money {
	return c.amountReceived
}

func (c *RecordCashPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/pkg/errs"
	"sewrica/internal/pkg/guard"
)

var ErrConfirmCardPaymentCommandIsNotConstructed = errors.New(
	"ConfirmCardPaymentCommand must be created via NewConfirmCardPaymentCommand constructor",
)

// ConfirmCardPaymentCommand records the processor's verdict for a card
// charge attempted against a previously created intent.
type ConfirmCardPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	intentID  string
	succeeded bool

	guard guard.ConstructorGuard
}

// NewConfirmCardPaymentCommand creates a card confirmation command.
func NewConfirmCardPaymentCommand(orderID kernel.UUID, intentID string, succeeded bool) (ConfirmCardPaymentCommand, error) {
	cmd := ConfirmCardPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setIntentID(intentID),
	); err != nil {
		return ConfirmCardPaymentCommand{}, err
	}
	cmd.succeeded = succeeded

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCardPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCardPaymentCommandIsNotConstructed)
}

// OrderID returns the order being settled.
func (c ConfirmCardPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// IntentID returns the processor intent reference.
func (c ConfirmCardPaymentCommand) IntentID() string {
	return c.intentID
}

// Succeeded reports the processor's verdict.
func (c ConfirmCardPaymentCommand) Succeeded() bool {
	return c.succeeded
}

func (c *ConfirmCardPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmCardPaymentCommand) setIntentID(intentID string) error {
	if intentID == "" {
		return errs.NewValueIsRequiredError("intentID")
	}

	c.intentID = intentID
	return nil
}

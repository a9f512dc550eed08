package commands

import (
	"context"
	"errors"
	"time"

	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/payment"
	"sewrica/internal/core/domain/services"
	"sewrica/internal/pkg/errs"
)

// ConfirmCardPaymentResult is the outcome of a card confirmation. Record is
// nil when the charge was declined; PaymentStatus reflects the order's
// payment dimension after the command.
type ConfirmCardPaymentResult struct {
	Record        *payment.Record
	PaymentStatus order.PaymentStatus
}

// ConfirmCardPaymentCommandHandler applies a card charge verdict to an order.
// Confirmations are idempotent on the intent reference: replaying a verdict
// for an already recorded intent returns the existing record untouched.
type ConfirmCardPaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	strategies services.PaymentStrategySet
}

// NewConfirmCardPaymentCommandHandler creates a handler for card confirmations.
func NewConfirmCardPaymentCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	strategies services.PaymentStrategySet,
) ConfirmCardPaymentCommandHandler {
	return ConfirmCardPaymentCommandHandler{
		uowFactory: uowFactory,
		strategies: strategies,
	}
}

// Handle processes the confirmation. A declined charge still commits the
// failed payment status so the order reflects the attempt; the decline is
// reported through the result rather than an error.
func (h *ConfirmCardPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmCardPaymentCommand) (ConfirmCardPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmCardPaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmCardPaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.PaymentRepository().GetByReference(ctx, cmd.IntentID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return ConfirmCardPaymentResult{}, err
	}
	if existing != nil {
		return ConfirmCardPaymentResult{Record: existing, PaymentStatus: order.PaymentCompleted}, uow.Commit(ctx)
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ConfirmCardPaymentResult{}, err
	}

	if aggregate.PaymentMethod() != order.MethodCard {
		return ConfirmCardPaymentResult{}, errs.NewValueIsInvalidErrorWithCause("orderId", services.ErrUnsupportedPaymentMethod)
	}

	strategy, err := h.strategies.For(aggregate.PaymentMethod())
	if err != nil {
		return ConfirmCardPaymentResult{}, err
	}

	record, err := strategy.Confirm(aggregate, services.PaymentEvidence{
		IntentID:  cmd.IntentID(),
		Succeeded: cmd.Succeeded(),
	}, time.Now().UTC())
	if err != nil && !errors.Is(err, services.ErrCardPaymentDeclined) {
		return ConfirmCardPaymentResult{}, err
	}

	if record != nil {
		if err = uow.PaymentRepository().Add(ctx, record); err != nil {
			return ConfirmCardPaymentResult{}, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ConfirmCardPaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmCardPaymentResult{}, err
	}

	return ConfirmCardPaymentResult{Record: record, PaymentStatus: aggregate.PaymentStatus()}, nil
}

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

// ConfirmMobileMoneyCommandHandler applies operator-verified mobile money
// transfers. Replaying a confirmation for an already settled order returns
// the existing record.
type ConfirmMobileMoneyCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	strategies services.PaymentStrategySet
}

// NewConfirmMobileMoneyCommandHandler creates a handler for mobile money confirmations.
func NewConfirmMobileMoneyCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	strategies services.PaymentStrategySet,
) ConfirmMobileMoneyCommandHandler {
	return ConfirmMobileMoneyCommandHandler{
		uowFactory: uowFactory,
		strategies: strategies,
	}
}

// Handle processes the confirmation and returns the payment record.
func (h *ConfirmMobileMoneyCommandHandler) Handle(ctx context.Context, cmd ConfirmMobileMoneyCommand) (*payment.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.PaymentRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, uow.Commit(ctx)
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.PaymentMethod() != order.MethodMobileMoney {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId", services.ErrUnsupportedPaymentMethod)
	}

	strategy, err := h.strategies.For(aggregate.PaymentMethod())
	if err != nil {
		return nil, err
	}

	record, err := strategy.Confirm(aggregate, services.PaymentEvidence{Reference: cmd.Reference()}, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return record, uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"
	"time"

	"sewrica/internal/core/domain/model/payment"
	"sewrica/internal/core/domain/services"
	"sewrica/internal/pkg/errs"
)

// RecordCashPaymentCommandHandler settles orders in cash. An underpayment
// fails with services.ErrInsufficientAmount and leaves the order untouched.
// Re-settling an already settled order returns the existing record.
type RecordCashPaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	strategies services.PaymentStrategySet
}

// NewRecordCashPaymentCommandHandler creates a handler for cash settlement.
func NewRecordCashPaymentCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	strategies services.PaymentStrategySet,
) RecordCashPaymentCommandHandler {
	return RecordCashPaymentCommandHandler{
		uowFactory: uowFactory,
		strategies: strategies,
	}
}

// Handle processes the cash settlement and returns the payment record,
// including the change due back to the customer.
func (h *RecordCashPaymentCommandHandler) Handle(ctx context.Context, cmd RecordCashPaymentCommand) (*payment.Record, error) {
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

	strategy, err := h.strategies.For(aggregate.PaymentMethod())
	if err != nil {
		return nil, err
	}

	received := cmd.AmountReceived()
	record, err := strategy.Confirm(aggregate, services.PaymentEvidence{AmountReceived: &received}, time.Now().UTC())
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

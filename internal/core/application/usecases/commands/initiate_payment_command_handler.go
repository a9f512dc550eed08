package commands

import (
	"context"

	"sewrica/internal/core/domain/services"
)

// InitiatePaymentCommandHandler starts settlement for an order. The
// strategy matching the order's payment method decides what initiation
// means; the handler persists the payment status change it causes.
type InitiatePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	strategies services.PaymentStrategySet
}

// NewInitiatePaymentCommandHandler creates a handler for payment initiation.
func NewInitiatePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	strategies services.PaymentStrategySet,
) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{
		uowFactory: uowFactory,
		strategies: strategies,
	}
}

// Handle processes the initiation command and returns the method-specific
// handle (client secret, transfer instructions, or nothing for cash).
func (h *InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) (services.PaymentHandle, error) {
	if err := cmd.Validate(); err != nil {
		return services.PaymentHandle{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.PaymentHandle{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.PaymentHandle{}, err
	}

	strategy, err := h.strategies.For(aggregate.PaymentMethod())
	if err != nil {
		return services.PaymentHandle{}, err
	}

	handle, err := strategy.Initiate(ctx, aggregate)
	if err != nil {
		return services.PaymentHandle{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return services.PaymentHandle{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.PaymentHandle{}, err
	}

	return handle, nil
}

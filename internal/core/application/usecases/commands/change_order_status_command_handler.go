package commands

import (
	"context"
	"time"

	"sewrica/internal/core/ports"
)

// ChangeOrderStatusCommandHandler advances an order's lifecycle status.
// The aggregate enforces the transition table; the handler adds the
// delivery payment gate policy and persists the result under the order's
// optimistic version guard.
type ChangeOrderStatusCommandHandler struct {
	uowFactory              OrderUoWFactory
	publisher               ports.EventPublisher
	requirePaymentToDeliver bool
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// When requirePaymentToDeliver is true, non-cash orders cannot be marked
// delivered until their payment is completed.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	requirePaymentToDeliver bool,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:              uowFactory,
		publisher:               publisher,
		requirePaymentToDeliver: requirePaymentToDeliver,
	}
}

// Handle processes the status change command.
// Repeating the order's current status is an idempotent no-op that still
// succeeds without touching the row.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == cmd.Target() {
		return uow.Commit(ctx)
	}

	if err = aggregate.ChangeStatus(cmd.Target(), time.Now().UTC(), h.requirePaymentToDeliver); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishOrderStatusChanged(ctx, aggregate)

	return nil
}

package commands

import (
	"context"
	"time"

	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/ports"
)

// CancelOrderCommandHandler cancels orders. The aggregate decides whether
// the caller's privilege level permits cancellation in the order's current
// status and flips a completed payment to refunded.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation. Cancelling an already cancelled order
// is an idempotent no-op.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	alreadyCancelled := aggregate.Status() == order.StatusCancelled

	if err = aggregate.Cancel(time.Now().UTC(), cmd.Privileged()); err != nil {
		return err
	}

	if alreadyCancelled {
		return uow.Commit(ctx)
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

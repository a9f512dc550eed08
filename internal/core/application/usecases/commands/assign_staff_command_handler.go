package commands

import (
	"context"
	"time"

	"sewrica/internal/core/domain/services"
)

// AssignStaffCommandHandler places staff members onto orders. The dispatcher
// service enforces the role match; the order aggregate enforces that its
// current status still accepts assignments.
type AssignStaffCommandHandler struct {
	uowFactory OrderStaffUoWFactory
	dispatcher services.StaffDispatcher
}

// NewAssignStaffCommandHandler creates a handler for staff assignment.
func NewAssignStaffCommandHandler(uowFactory OrderStaffUoWFactory, dispatcher services.StaffDispatcher) AssignStaffCommandHandler {
	return AssignStaffCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the assignment command. Reads the staff member and order
// in one transaction so the role check and the order write stay consistent.
func (h *AssignStaffCommandHandler) Handle(ctx context.Context, cmd AssignStaffCommand) error {
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

	member, err := uow.StaffRepository().Get(ctx, cmd.StaffID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Dispatch(aggregate, member, cmd.Slot(), time.Now().UTC(), cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"errors"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/staff"
	"sewrica/internal/pkg/errs"
	"sewrica/internal/pkg/guard"
)

var ErrAssignStaffCommandIsNotConstructed = errors.New(
	"AssignStaffCommand must be created via NewAssignStaffCommand constructor",
)

// AssignStaffCommand places a staff member onto an order's chef or delivery
// slot. Re-assigning an occupied slot replaces the previous assignee.
type AssignStaffCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	staffID kernel.UUID
	slot    staff.Role
	notes   string

	guard guard.ConstructorGuard
}

// NewAssignStaffCommand creates an assignment command for the given slot.
func NewAssignStaffCommand(orderID, staffID kernel.UUID, slot staff.Role, notes string) (AssignStaffCommand, error) {
	cmd := AssignStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStaffID(staffID),
		cmd.setSlot(slot),
	); err != nil {
		return AssignStaffCommand{}, err
	}
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignStaffCommand) Validate() error {
	return c.guard.Validate(ErrAssignStaffCommandIsNotConstructed)
}

// OrderID returns the order receiving the assignment.
func (c AssignStaffCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StaffID returns the staff member being assigned.
func (c AssignStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Slot returns which role slot is being filled.
func (c AssignStaffCommand) Slot() staff.Role {
	return c.slot
}

// Notes returns the free-form assignment notes.
func (c AssignStaffCommand) Notes() string {
	return c.notes
}

func (c *AssignStaffCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *AssignStaffCommand) setSlot(slot staff.Role) error {
	if err := slot.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("role", err)
	}

	c.slot = slot
	return nil
}

package commands

import (
	"errors"
	"strings"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/staff"
	"sewrica/internal/pkg/errs"
	"sewrica/internal/pkg/guard"
)

var ErrCreateStaffCommandIsNotConstructed = errors.New(
	"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
)

// CreateStaffCommand registers a new chef or delivery person.
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID
	name    string
	role    staff.Role

	guard guard.ConstructorGuard
}

// NewCreateStaffCommand creates a command to register a staff member.
func NewCreateStaffCommand(staffID kernel.UUID, name string, role staff.Role) (CreateStaffCommand, error) {
	cmd := CreateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return CreateStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

// StaffID returns the new member's identifier.
func (c CreateStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Name returns the member's display name.
func (c CreateStaffCommand) Name() string {
	return c.name
}

// Role returns the member's role.
func (c CreateStaffCommand) Role() staff.Role {
	return c.role
}

func (c *CreateStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *CreateStaffCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return staff.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStaffCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("role", err)
	}

	c.role = role
	return nil
}

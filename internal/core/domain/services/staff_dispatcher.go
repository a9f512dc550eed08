package services

import (
	"errors"
	"fmt"
	"time"

	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/staff"
)

// ErrRoleMismatch is returned when a staff member is dispatched into a slot
// their role does not qualify them for, e.g. assigning a delivery person
// as the chef of an order.
var ErrRoleMismatch = errors.New("staff member does not have the required role")

// StaffDispatcher is a domain service that places staff members onto orders.
//
// Business rules:
//   - The staff member's role must match the slot being filled
//   - Orders in a terminal status can no longer receive assignments
//   - Re-dispatching a slot replaces the previous assignee
type StaffDispatcher struct{}

// NewStaffDispatcher creates a new StaffDispatcher instance.
func NewStaffDispatcher() StaffDispatcher {
	return StaffDispatcher{}
}

// Dispatch assigns a staff member to the order slot matching the given role.
//
// Returns ErrRoleMismatch when the member's role differs from the requested
// slot, or the order's own assignment error when the order cannot accept
// staff in its current status.
func (d StaffDispatcher) Dispatch(o *order.Order, member *staff.StaffMember, slot staff.Role, at time.Time, notes string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := member.Validate(); err != nil {
		return err
	}

	if member.Role() != slot {
		return fmt.Errorf("%w: %s is a %s, slot requires %s", ErrRoleMismatch, member.Name(), member.Role(), slot)
	}

	switch slot {
	case staff.RoleChef:
		return o.AssignChef(member.ID(), at, notes)
	case staff.RoleDelivery:
		return o.AssignDelivery(member.ID(), at, notes)
	default:
		return slot.Validate()
	}
}

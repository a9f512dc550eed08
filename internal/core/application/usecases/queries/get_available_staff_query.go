package queries

import (
	"errors"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/staff"
	"sewrica/internal/pkg/errs"
	"sewrica/internal/pkg/guard"
)

var ErrGetAvailableStaffQueryIsNotConstructed = errors.New(
	"GetAvailableStaffQuery must be created via NewGetAvailableStaffQuery constructor",
)

// GetAvailableStaffQuery lists staff of one role with their current
// workload, least loaded first, so dispatch can pick who takes the next
// order.
type GetAvailableStaffQuery struct {
	role staff.Role

	guard guard.ConstructorGuard
}

// NewGetAvailableStaffQuery creates a workload query for the given role.
func NewGetAvailableStaffQuery(role staff.Role) (GetAvailableStaffQuery, error) {
	if err := role.Validate(); err != nil {
		return GetAvailableStaffQuery{}, errs.NewValueIsInvalidErrorWithCause("role", err)
	}

	return GetAvailableStaffQuery{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableStaffQueryIsNotConstructed)
}

// Role returns the queried role.
func (q GetAvailableStaffQuery) Role() staff.Role {
	return q.role
}

// StaffWorkloadResponse is one staff member with their active order count.
type StaffWorkloadResponse struct {
	ID          kernel.UUID
	Name        string
	Role        string
	ActiveCount int
}

package ports

import (
	"context"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/staff"
)

// StaffWorkload pairs a staff member with the number of orders they are
// currently assigned to that have not reached a terminal status.
type StaffWorkload struct {
	Member      *staff.StaffMember
	ActiveCount int
}

// StaffRepository defines the persistence contract for staff members.
type StaffRepository interface {
	// Add persists a new staff member to storage.
	Add(ctx context.Context, member *staff.StaffMember) error

	// Get retrieves a staff member by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.StaffMember, error)

	// GetAllByRole retrieves all staff members holding the given role.
	GetAllByRole(ctx context.Context, role staff.Role) ([]*staff.StaffMember, error)

	// GetWorkloads retrieves all staff members of the given role together
	// with their active assignment counts, least loaded first.
	GetWorkloads(ctx context.Context, role staff.Role) ([]StaffWorkload, error)
}

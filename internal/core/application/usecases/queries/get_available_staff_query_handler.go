package queries

import (
	"context"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableStaffQueryHandler lists staff of a role ordered by workload.
// An order counts toward a member's workload while it occupies their slot
// and has not reached a terminal status.
type GetAvailableStaffQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableStaffQueryHandler creates a handler for staff workload queries.
func NewGetAvailableStaffQueryHandler(db *gorm.DB) GetAvailableStaffQueryHandler {
	return GetAvailableStaffQueryHandler{db: db}
}

// Handle executes the workload query, least loaded staff first.
func (h GetAvailableStaffQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableStaffQuery,
) ([]StaffWorkloadResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	slotColumn := "chef_id"
	if query.Role() == staff.RoleDelivery {
		slotColumn = "delivery_id"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT s.id, s.name, s.role, COUNT(o.id) AS active_count
		FROM staff s
		LEFT JOIN orders o
			ON o.`+slotColumn+` = s.id
			AND o.status NOT IN ('delivered', 'cancelled')
		WHERE s.role = ?
		GROUP BY s.id, s.name, s.role
		ORDER BY active_count, s.name
	`, query.Role().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workloads := make([]StaffWorkloadResponse, 0)
	for rows.Next() {
		var workload StaffWorkloadResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &workload.Name, &workload.Role, &workload.ActiveCount); err != nil {
			return nil, err
		}
		if workload.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		workloads = append(workloads, workload)
	}

	return workloads, rows.Err()
}

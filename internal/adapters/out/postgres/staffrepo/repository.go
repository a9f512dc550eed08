package staffrepo

import (
	"context"
	"errors"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/staff"
	"sewrica/internal/core/ports"
	"sewrica/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Add saves a new staff member to the database.
func (r *GormStaffRepository) Add(ctx context.Context, member *staff.StaffMember) error {
	if err := member.Validate(); err != nil {
		return err
	}

	dto := fromDomain(member)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a staff member by ID.
func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.StaffMember, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRole retrieves all staff members holding the given role.
func (r *GormStaffRepository) GetAllByRole(ctx context.Context, role staff.Role) ([]*staff.StaffMember, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []StaffDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "role = ?", role.String()).Error; err != nil {
		return nil, err
	}

	members := make([]*staff.StaffMember, 0, len(dtos))
	for _, dto := range dtos {
		member, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}

// GetWorkloads retrieves staff of the given role with their active
// assignment counts, least loaded first. An order counts while the member
// occupies its slot and it has not reached a terminal status.
func (r *GormStaffRepository) GetWorkloads(ctx context.Context, role staff.Role) ([]ports.StaffWorkload, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	slotColumn := "chef_id"
	if role == staff.RoleDelivery {
		slotColumn = "delivery_id"
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT s.id, s.name, s.role, COUNT(o.id) AS active_count
		FROM staff s
		LEFT JOIN orders o
			ON o.`+slotColumn+` = s.id
			AND o.status NOT IN ('delivered', 'cancelled')
		WHERE s.role = ?
		GROUP BY s.id, s.name, s.role
		ORDER BY active_count, s.name
	`, role.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workloads := make([]ports.StaffWorkload, 0)
	for rows.Next() {
		var dto StaffDTO
		var active int

		if err = rows.Scan(&dto.ID, &dto.Name, &dto.Role, &active); err != nil {
			return nil, err
		}
		member, memberErr := toDomain(dto)
		if memberErr != nil {
			return nil, memberErr
		}
		workloads = append(workloads, ports.StaffWorkload{Member: member, ActiveCount: active})
	}

	return workloads, rows.Err()
}

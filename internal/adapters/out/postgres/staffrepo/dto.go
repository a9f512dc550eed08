// Package staffrepo persists staff members and answers workload lookups for
// dispatch decisions.
package staffrepo

import (
	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO represents the database structure for persisting staff members.
type StaffDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Role string `gorm:"type:varchar(16);index"`
}

// TableName specifies the database table name for staff members.
func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(member *staff.StaffMember) StaffDTO {
	return StaffDTO{
		ID:   member.ID().Bytes(),
		Name: member.Name(),
		Role: member.Role().String(),
	}
}

func toDomain(dto StaffDTO) (*staff.StaffMember, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := staff.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaffMember(id, dto.Name, role)
}

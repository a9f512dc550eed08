package staff

import (
	"errors"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/pkg/errs"
	"sewrica/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a staff member without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrStaffIsNotConstructed is returned when using an improperly initialized StaffMember.
	ErrStaffIsNotConstructed = errors.New("StaffMember must be created via NewStaffMember constructor")
)

// StaffMember represents one member of the restaurant's dispatch pool:
// a chef or a delivery person.
//
// Availability is deliberately not a field. It is derived at query time from
// the member's count of active (non-terminal) order assignments, so there is
// no stored flag to drift out of sync. It is a display hint only; the
// dispatch contract does not enforce a capacity cap.
type StaffMember struct {
	id    kernel.UUID
	name  string
	role  Role
	guard guard.ConstructorGuard
}

// NewStaffMember creates a staff member with a valid identity, non-empty name,
// and a defined role.
func NewStaffMember(id kernel.UUID, name string, role Role) (*StaffMember, error) {
	member := &StaffMember{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		member.setID(id),
		member.setName(name),
		member.setRole(role),
	); err != nil {
		return nil, err
	}

	return member, nil
}

// RestoreStaffMember reconstructs a staff member from persistence,
// re-validating all fields.
func RestoreStaffMember(id kernel.UUID, name string, role Role) (*StaffMember, error) {
	return NewStaffMember(id, name, role)
}

// Validate ensures the StaffMember was properly constructed.
func (s *StaffMember) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

// IsEqual compares two staff members by identity.
func (s *StaffMember) IsEqual(other *StaffMember) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the staff member's unique identifier.
func (s *StaffMember) ID() kernel.UUID {
	return s.id
}

// Name returns the staff member's display name.
func (s *StaffMember) Name() string {
	return s.name
}

// Role returns the staff member's job.
func (s *StaffMember) Role() Role {
	return s.role
}

func (s *StaffMember) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StaffMember) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *StaffMember) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}

package staff

import (
	"fmt"

	"sewrica/internal/pkg/errs"
)

// Role is the job a staff member can be dispatched for. It is a closed
// enumeration: kitchen assignment accepts only chefs, delivery assignment
// accepts only delivery staff.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleChef prepares orders in the kitchen.
	RoleChef

	// RoleDelivery brings orders to customers.
	RoleDelivery
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleChef:     "chef",
		RoleDelivery: "delivery",
	}
}

// ParseRole converts the wire representation ("chef", "delivery") to a Role.
func ParseRole(s string) (Role, error) {
	for role, str := range roleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid staff role", s))
}

// Validate checks that the Role is chef or delivery.
func (r Role) Validate() error {
	if r != RoleChef && r != RoleDelivery {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid staff role", r))
	}
	return nil
}

// String returns the wire/persistence name of the role.
func (r Role) String() string {
	if str, ok := roleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

package actor

import (
	"fmt"

	"moving/internal/pkg/errs"
)

// Role is the access role of an authenticated user.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Client books moves and manages inventories.
	Client

	// Mover fulfills bookings and reports status updates.
	Mover

	// Admin can read and update everything.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Client: "client",
		Mover:  "mover",
		Admin:  "admin",
	}
}

// RoleFromString parses a boundary-supplied role value.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role value is one of the known roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

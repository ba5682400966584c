package user

import (
	"gofer/internal/pkg/errs"
)

// Role defines the access level of a user account.
type Role int

const (
	// RoleUnknown is the zero value, not a valid role.
	RoleUnknown Role = iota
	// RoleCustomer places and pays for orders.
	RoleCustomer
	// RoleAgent accepts and fulfills orders.
	RoleAgent
	// RoleAdmin reviews agents and oversees the platform.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleAgent:    "agent",
		RoleAdmin:    "admin",
	}
}

func getValidRoleStrings() map[string]Role {
	return map[string]Role{
		"customer": RoleCustomer,
		"agent":    RoleAgent,
		"admin":    RoleAdmin,
	}
}

// RoleFromString parses a role name into a Role.
func RoleFromString(s string) (Role, error) {
	role, ok := getValidRoleStrings()[s]
	if !ok {
		return RoleUnknown, errs.NewValueIsInvalidError("role")
	}
	return role, nil
}

// Validate checks that the Role holds one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the role name, or "unknown" for undefined values.
func (r Role) String() string {
	s, ok := getRoleStrings()[r]
	if !ok {
		return getRoleStrings()[RoleUnknown]
	}
	return s
}

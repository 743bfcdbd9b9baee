// Package role defines the closed set of caller roles used to gate every
// operation in the system. Roles are parsed once at the trust boundary (where
// the caller identity is established) so that illegal role values never reach
// the use cases.
package role

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Role represents the access level of a caller.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Admin manages platform-level resources such as restaurants.
	Admin

	// Owner manages the menu of the restaurants they own.
	Owner

	// Employee prepares and hands off orders for their restaurant.
	Employee

	// Client places and cancels their own orders.
	Client
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:  "UNKNOWN",
		Admin:    "ADMIN",
		Owner:    "OWNER",
		Employee: "EMPLOYEE",
		Client:   "CLIENT",
	}
}

func getValidRoleStrings() map[string]Role {
	return map[string]Role{
		"ADMIN":    Admin,
		"OWNER":    Owner,
		"EMPLOYEE": Employee,
		"CLIENT":   Client,
	}
}

// FromString parses a role literal (ADMIN, OWNER, EMPLOYEE, CLIENT).
// Returns an error for any other value.
func FromString(s string) (Role, error) {
	r, ok := getValidRoleStrings()[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
	return r, nil
}

// Validate checks that the Role is one of the four valid values.
func (r Role) Validate() error {
	switch r {
	case Admin, Owner, Employee, Client:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
}

// String returns the role literal, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// EnsureAdmin fails with INSUFFICIENT_PERMISSIONS unless the role is Admin.
func (r Role) EnsureAdmin() error {
	return r.ensure(Admin)
}

// EnsureOwner fails with INSUFFICIENT_PERMISSIONS unless the role is Owner.
func (r Role) EnsureOwner() error {
	return r.ensure(Owner)
}

// EnsureEmployee fails with INSUFFICIENT_PERMISSIONS unless the role is Employee.
func (r Role) EnsureEmployee() error {
	return r.ensure(Employee)
}

// EnsureClient fails with INSUFFICIENT_PERMISSIONS unless the role is Client.
func (r Role) EnsureClient() error {
	return r.ensure(Client)
}

func (r Role) ensure(expected Role) error {
	if r != expected {
		return errs.ErrInsufficientPermissions
	}
	return nil
}

package domain

import "fmt"

// Role is the permission level of an employee.
type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

// ParseRole converts a string into a Role, rejecting anything outside the
// two allowed values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStaff, RoleManager:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role %q (must be %q or %q)", s, RoleStaff, RoleManager)
	}
}

// Employee represents a workforce member. Employees are never deleted;
// the Active flag soft-deactivates them instead.
type Employee struct {
	ID     int64
	Name   string
	Role   Role
	Active bool
}

// ActiveLabel returns the display label for the active flag.
func (e *Employee) ActiveLabel() string {
	if e.Active {
		return "active"
	}
	return "inactive"
}

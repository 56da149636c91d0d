package enums

import "fmt"

// MoverRole is the role a user holds within a moving company account.
type MoverRole string

const (
	MoverRoleOwner   MoverRole = "owner"
	MoverRoleManager MoverRole = "manager"
	MoverRoleStaff   MoverRole = "staff"
)

var validMoverRoles = []MoverRole{
	MoverRoleOwner,
	MoverRoleManager,
	MoverRoleStaff,
}

// String implements fmt.Stringer.
func (m MoverRole) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MoverRole.
func (m MoverRole) IsValid() bool {
	for _, candidate := range validMoverRoles {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMoverRole converts raw input into a MoverRole.
func ParseMoverRole(value string) (MoverRole, error) {
	for _, candidate := range validMoverRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid mover role %q", value)
}

// Package entity contains the core business objects of the project.
package entity

// Role is the authorization level bound to a profile.
type Role string

const (
	// RoleAdministrator sees and mutates every voter record.
	RoleAdministrator Role = "administrator"
	// RoleStandardUser sees and mutates only the voter records it created.
	RoleStandardUser Role = "standard_user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleStandardUser:
		return true
	default:
		return false
	}
}

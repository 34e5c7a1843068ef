package models

// Role is the caller category asserted by the token header.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleTeacher    Role = "teacher"
	RoleStudent    Role = "student"
)

// Known reports whether r belongs to the fixed role set.
func (r Role) Known() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleTeacher, RoleStudent:
		return true
	default:
		return false
	}
}

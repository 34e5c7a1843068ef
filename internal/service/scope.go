package service

import (
	"github.com/noah-isme/students-api/internal/models"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
)

// Messages returned when a read is rejected before touching the store.
const (
	MsgCollegeIDRequired = "College ID is required for admin role"
	MsgSectionRequired   = "Section is required for teacher role"
	MsgStudentIDRequired = "Student ID is required for student role"
	MsgInvalidRole       = "Invalid role"
)

// ResolveScope maps a role and its query parameters to the row filter the
// caller may read. Only the parameter belonging to role is consulted.
func ResolveScope(role models.Role, params models.ScopeParams) (models.Scope, error) {
	switch role {
	case models.RoleSuperAdmin:
		return models.Scope{Kind: models.ScopeAll}, nil
	case models.RoleAdmin:
		return requireParam(models.ScopeCollege, params.CollegeID, MsgCollegeIDRequired)
	case models.RoleTeacher:
		return requireParam(models.ScopeSection, params.Section, MsgSectionRequired)
	case models.RoleStudent:
		return requireParam(models.ScopeStudent, params.StudentID, MsgStudentIDRequired)
	default:
		return models.Scope{}, appErrors.Clone(appErrors.ErrInvalidInput, MsgInvalidRole)
	}
}

func requireParam(kind models.ScopeKind, value, message string) (models.Scope, error) {
	if value == "" {
		return models.Scope{}, appErrors.Clone(appErrors.ErrInvalidInput, message)
	}
	return models.Scope{Kind: kind, Value: value}, nil
}

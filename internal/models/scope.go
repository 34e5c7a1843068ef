package models

// ScopeKind names the filter applied to a read.
type ScopeKind string

const (
	ScopeAll     ScopeKind = "all"
	ScopeCollege ScopeKind = "college"
	ScopeSection ScopeKind = "section"
	ScopeStudent ScopeKind = "student"
)

// ScopeField is a column the read path may filter on.
type ScopeField string

const (
	FieldCollegeID ScopeField = "college_id"
	FieldSection   ScopeField = "section"
	FieldID        ScopeField = "id"
)

// Scope is the row filter chosen for a caller's role.
type Scope struct {
	Kind  ScopeKind
	Value string
}

// Field returns the column backing the scope; ok is false for ScopeAll.
func (s Scope) Field() (ScopeField, bool) {
	switch s.Kind {
	case ScopeCollege:
		return FieldCollegeID, true
	case ScopeSection:
		return FieldSection, true
	case ScopeStudent:
		return FieldID, true
	default:
		return "", false
	}
}

// ScopeParams carries the role-dependent query parameters of a read.
type ScopeParams struct {
	CollegeID string
	Section   string
	StudentID string
}

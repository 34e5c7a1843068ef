package models

// Student represents a row of the students table.
type Student struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Section   string `db:"section" json:"section"`
	CollegeID int64  `db:"college_id" json:"college_id"`
}

// StudentPayload is the full-replacement body accepted by create and update.
type StudentPayload struct {
	Name      string `json:"name" validate:"required"`
	Section   string `json:"section" validate:"required"`
	CollegeID *int64 `json:"college_id" validate:"required"`
}

// ToStudent builds a Student from the payload using id as its identity.
func (p StudentPayload) ToStudent(id int64) *Student {
	s := &Student{ID: id, Name: p.Name, Section: p.Section}
	if p.CollegeID != nil {
		s.CollegeID = *p.CollegeID
	}
	return s
}

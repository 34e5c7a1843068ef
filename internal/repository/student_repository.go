package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/students-api/internal/models"
)

const studentColumns = "id, name, section, college_id"

// QueryObserver receives the duration of each statement.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// StudentRepository issues single statements against the students table.
// The underlying pool is shared process-wide; each call borrows one
// connection for the duration of its statement.
type StudentRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewStudentRepository constructs a StudentRepository. observer may be nil.
func NewStudentRepository(db *sqlx.DB, observer QueryObserver) *StudentRepository {
	return &StudentRepository{db: db, observer: observer}
}

// SelectAll returns every student without filtering.
func (r *StudentRepository) SelectAll(ctx context.Context) ([]models.Student, error) {
	defer r.observe("students.select_all", time.Now())

	students := []models.Student{}
	query := "SELECT " + studentColumns + " FROM students"
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("select students: %w", err)
	}
	return students, nil
}

// SelectBy returns students whose field equals value.
func (r *StudentRepository) SelectBy(ctx context.Context, field models.ScopeField, value string) ([]models.Student, error) {
	column, err := filterColumn(field)
	if err != nil {
		return nil, err
	}
	defer r.observe("students.select_by_"+column, time.Now())

	students := []models.Student{}
	query := r.db.Rebind(fmt.Sprintf("SELECT %s FROM students WHERE %s = ?", studentColumns, column))
	if err := r.db.SelectContext(ctx, &students, query, value); err != nil {
		return nil, fmt.Errorf("select students by %s: %w", column, err)
	}
	return students, nil
}

// Insert stores a new student and returns the identifier assigned by the store.
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) (int64, error) {
	defer r.observe("students.insert", time.Now())

	const query = "INSERT INTO students (name, section, college_id) VALUES (?, ?, ?)"
	if r.db.DriverName() == "postgres" {
		var id int64
		if err := r.db.QueryRowxContext(ctx, r.db.Rebind(query+" RETURNING id"), student.Name, student.Section, student.CollegeID).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert student: %w", err)
		}
		student.ID = id
		return id, nil
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), student.Name, student.Section, student.CollegeID)
	if err != nil {
		return 0, fmt.Errorf("insert student: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert student id: %w", err)
	}
	student.ID = id
	return id, nil
}

// UpdateAll overwrites every mutable column of the student identified by id.
func (r *StudentRepository) UpdateAll(ctx context.Context, id string, student *models.Student) error {
	defer r.observe("students.update", time.Now())

	query := r.db.Rebind("UPDATE students SET name = ?, section = ?, college_id = ? WHERE id = ?")
	if _, err := r.db.ExecContext(ctx, query, student.Name, student.Section, student.CollegeID, id); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// DeleteBy removes the student identified by id.
func (r *StudentRepository) DeleteBy(ctx context.Context, id string) error {
	defer r.observe("students.delete", time.Now())

	if _, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM students WHERE id = ?"), id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

// Ping verifies the pool can reach the store.
func (r *StudentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *StudentRepository) observe(label string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
}

func filterColumn(field models.ScopeField) (string, error) {
	switch field {
	case models.FieldCollegeID, models.FieldSection, models.FieldID:
		return string(field), nil
	default:
		return "", fmt.Errorf("unsupported filter field %q", field)
	}
}

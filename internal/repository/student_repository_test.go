package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/students-api/internal/models"
)

type recordingObserver struct {
	labels []string
}

func (o *recordingObserver) ObserveDBQuery(label string, _ time.Duration) {
	o.labels = append(o.labels, label)
}

func newStudentMock(t *testing.T, driver string) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, driver), mock, func() { db.Close() }
}

func studentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "section", "college_id"})
}

func TestStudentRepositorySelectAll(t *testing.T) {
	db, mock, cleanup := newStudentMock(t, "mysql")
	defer cleanup()
	obs := &recordingObserver{}
	repo := NewStudentRepository(db, obs)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, section, college_id FROM students")).
		WillReturnRows(studentRows().AddRow(1, "A", "S1", 1).AddRow(2, "B", "S2", 2))

	students, err := repo.SelectAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Student{{ID: 1, Name: "A", Section: "S1", CollegeID: 1}, {ID: 2, Name: "B", Section: "S2", CollegeID: 2}}, students)
	assert.Equal(t, []string{"students.select_all"}, obs.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySelectByReturnsEmptySlice(t *testing.T) {
	db, mock, cleanup := newStudentMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, section, college_id FROM students WHERE id = ?")).
		WithArgs("5").
		WillReturnRows(studentRows())

	students, err := repo.SelectBy(context.Background(), models.FieldID, "5")
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySelectByPostgresPlaceholders(t *testing.T) {
	db, mock, cleanup := newStudentMock(t, "postgres")
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, section, college_id FROM students WHERE college_id = $1")).
		WithArgs("3").
		WillReturnRows(studentRows().AddRow(4, "C", "S1", 3))

	students, err := repo.SelectBy(context.Background(), models.FieldCollegeID, "3")
	require.NoError(t, err)
	assert.Len(t, students, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySelectByRejectsUnknownField(t *testing.T) {
	db, mock, cleanup := newStudentMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	_, err := repo.SelectBy(context.Background(), models.ScopeField("name; DROP TABLE students"), "x")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySelectError(t *testing.T) {
	db, mock, cleanup := newStudentMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	mock.ExpectQuery("SELECT .* FROM students WHERE section").WillReturnError(errors.New("connection refused"))

	_, err := repo.SelectBy(context.Background(), models.FieldSection, "S1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestStudentRepositoryInsertMySQL(t *testing.T) {
	db, mock, cleanup := newStudentMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO students (name, section, college_id) VALUES (?, ?, ?)")).
		WithArgs("A", "S1", int64(1)).
		WillReturnResult(sqlmock.NewResult(9, 1))

	student := &models.Student{Name: "A", Section: "S1", CollegeID: 1}
	id, err := repo.Insert(context.Background(), student)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, int64(9), student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryInsertPostgres(t *testing.T) {
	db, mock, cleanup := newStudentMock(t, "postgres")
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students (name, section, college_id) VALUES ($1, $2, $3) RETURNING id")).
		WithArgs("A", "S1", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	id, err := repo.Insert(context.Background(), &models.Student{Name: "A", Section: "S1", CollegeID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdateAll(t *testing.T) {
	db, mock, cleanup := newStudentMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET name = ?, section = ?, college_id = ? WHERE id = ?")).
		WithArgs("N", "S9", int64(4), "5").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateAll(context.Background(), "5", &models.Student{Name: "N", Section: "S9", CollegeID: 4})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryDeleteBy(t *testing.T) {
	db, mock, cleanup := newStudentMock(t, "mysql")
	defer cleanup()
	obs := &recordingObserver{}
	repo := NewStudentRepository(db, obs)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = ?")).
		WithArgs("5").
		WillReturnError(errors.New("lock wait timeout"))

	err := repo.DeleteBy(context.Background(), "5")
	require.Error(t, err)
	assert.Equal(t, []string{"students.delete"}, obs.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

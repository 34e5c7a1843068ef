package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/students-api/internal/models"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
)

// Outcome messages of the student operations.
const (
	MsgStudentCreated = "Student created successfully"
	MsgStudentUpdated = "Student updated successfully"
	MsgStudentDeleted = "Student deleted successfully"

	MsgFetchStudents  = "Error fetching students"
	MsgFetchStudent   = "Error fetching student"
	MsgCreateStudent  = "Error creating student"
	MsgUpdateStudent  = "Error updating student"
	MsgDeleteStudent  = "Error deleting student"
	MsgInvalidPayload = "Invalid student payload"
)

type studentStore interface {
	SelectAll(ctx context.Context) ([]models.Student, error)
	SelectBy(ctx context.Context, field models.ScopeField, value string) ([]models.Student, error)
	Insert(ctx context.Context, student *models.Student) (int64, error)
	UpdateAll(ctx context.Context, id string, student *models.Student) error
	DeleteBy(ctx context.Context, id string) error
}

// StudentService implements the role-scoped read path and the write path.
type StudentService struct {
	store     studentStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service. cache may be nil.
func NewStudentService(store studentStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: store, cache: cache, validator: validate, logger: logger}
}

// List returns the rows role may read given params. Rejections happen
// before the store is consulted.
func (s *StudentService) List(ctx context.Context, role models.Role, params models.ScopeParams) ([]models.Student, error) {
	scope, err := ResolveScope(role, params)
	if err != nil {
		return nil, err
	}
	students, err := s.Fetch(ctx, scope)
	if err != nil {
		return nil, s.storeFailure(err, fetchMessage(scope), "select", zap.String("scope", string(scope.Kind)), zap.String("value", scope.Value))
	}
	return students, nil
}

// Fetch reads the rows matching an already resolved scope. Errors are
// returned raw so callers can attach their own public message.
func (s *StudentService) Fetch(ctx context.Context, scope models.Scope) ([]models.Student, error) {
	if cached, ok := s.cache.Get(ctx, scope); ok {
		return cached, nil
	}

	gen := s.cache.Generation()
	var (
		students []models.Student
		err      error
	)
	if field, ok := scope.Field(); ok {
		students, err = s.store.SelectBy(ctx, field, scope.Value)
	} else {
		students, err = s.store.SelectAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []models.Student{}
	}
	s.cache.Set(ctx, scope, students, gen)
	return students, nil
}

// Create inserts a student and returns its store-assigned id.
func (s *StudentService) Create(ctx context.Context, payload models.StudentPayload) (int64, error) {
	if err := s.validator.Struct(payload); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInvalidInput.Code, appErrors.ErrInvalidInput.Status, MsgInvalidPayload)
	}
	student := payload.ToStudent(0)
	id, err := s.store.Insert(ctx, student)
	if err != nil {
		return 0, s.storeFailure(err, MsgCreateStudent, "insert")
	}
	s.cache.Invalidate(ctx)
	return id, nil
}

// Update replaces every mutable field of student id.
func (s *StudentService) Update(ctx context.Context, id string, payload models.StudentPayload) error {
	if err := s.validator.Struct(payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInvalidInput.Code, appErrors.ErrInvalidInput.Status, MsgInvalidPayload)
	}
	if err := s.store.UpdateAll(ctx, id, payload.ToStudent(0)); err != nil {
		return s.storeFailure(err, MsgUpdateStudent, "update", zap.String("id", id))
	}
	s.cache.Invalidate(ctx)
	return nil
}

// Delete removes student id.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteBy(ctx, id); err != nil {
		return s.storeFailure(err, MsgDeleteStudent, "delete", zap.String("id", id))
	}
	s.cache.Invalidate(ctx)
	return nil
}

// storeFailure logs the full store error and returns a generic public one.
func (s *StudentService) storeFailure(err error, message, op string, fields ...zap.Field) error {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	s.logger.Error(message, fields...)
	return appErrors.Wrap(err, appErrors.ErrStoreFailure.Code, appErrors.ErrStoreFailure.Status, message)
}

func fetchMessage(scope models.Scope) string {
	if scope.Kind == models.ScopeStudent {
		return MsgFetchStudent
	}
	return MsgFetchStudents
}

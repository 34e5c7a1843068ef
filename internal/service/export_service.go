package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/students-api/internal/models"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
	"github.com/noah-isme/students-api/pkg/export"
)

const (
	MsgExportStudents    = "Error exporting students"
	MsgUnsupportedFormat = "Unsupported export format"
)

var exportHeaders = []string{"id", "name", "section", "college_id"}

// ExportResult is a rendered export ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders role-scoped reads as downloadable documents.
type ExportService struct {
	students *StudentService
	logger   *zap.Logger
	now      func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(students *StudentService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{students: students, logger: logger, now: time.Now}
}

// Export applies the same scoping as a read and renders the rows.
func (s *ExportService) Export(ctx context.Context, role models.Role, params models.ScopeParams, rawFormat string) (*ExportResult, error) {
	scope, err := ResolveScope(role, params)
	if err != nil {
		return nil, err
	}
	format, ok := export.ParseFormat(rawFormat)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidInput, MsgUnsupportedFormat)
	}

	students, err := s.students.Fetch(ctx, scope)
	if err != nil {
		return nil, s.students.storeFailure(err, MsgExportStudents, "export", zap.String("scope", string(scope.Kind)))
	}

	body, err := export.Render(format, dataset(students))
	if err != nil {
		s.logger.Error(MsgExportStudents, zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStoreFailure.Code, appErrors.ErrStoreFailure.Status, MsgExportStudents)
	}

	return &ExportResult{
		Filename:    fmt.Sprintf("students-%s.%s", s.now().UTC().Format("20060102-150405"), format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func dataset(students []models.Student) export.Dataset {
	rows := make([][]string, 0, len(students))
	for _, st := range students {
		rows = append(rows, []string{
			strconv.FormatInt(st.ID, 10),
			st.Name,
			st.Section,
			strconv.FormatInt(st.CollegeID, 10),
		})
	}
	return export.Dataset{Title: "Students", Headers: exportHeaders, Rows: rows}
}

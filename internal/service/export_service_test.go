package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/students-api/internal/models"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
)

func TestExportServiceCSV(t *testing.T) {
	store := newMockStudentStore(seedStudents()...)
	svc := NewExportService(NewStudentService(store, nil, nil, nil), nil)
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	res, err := svc.Export(context.Background(), models.RoleAdmin, models.ScopeParams{CollegeID: "2"}, "")
	require.NoError(t, err)
	assert.Equal(t, "students-20240102-030405.csv", res.Filename)
	assert.Equal(t, "text/csv", res.ContentType)
	assert.Equal(t, "id,name,section,college_id\n3,Citra,S1,2\n", string(res.Body))
}

func TestExportServicePDF(t *testing.T) {
	store := newMockStudentStore(seedStudents()...)
	svc := NewExportService(NewStudentService(store, nil, nil, nil), nil)

	res, err := svc.Export(context.Background(), models.RoleSuperAdmin, models.ScopeParams{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", res.ContentType)
	assert.True(t, bytes.HasPrefix(res.Body, []byte("%PDF-")))
}

func TestExportServiceRejections(t *testing.T) {
	store := newMockStudentStore(seedStudents()...)
	svc := NewExportService(NewStudentService(store, nil, nil, nil), nil)
	ctx := context.Background()

	_, err := svc.Export(ctx, models.RoleTeacher, models.ScopeParams{}, "csv")
	assert.Equal(t, MsgSectionRequired, appErrors.FromError(err).Message)

	_, err = svc.Export(ctx, models.RoleSuperAdmin, models.ScopeParams{}, "xlsx")
	assert.Equal(t, MsgUnsupportedFormat, appErrors.FromError(err).Message)
	assert.Empty(t, store.calls)

	store.err = errors.New("boom")
	_, err = svc.Export(ctx, models.RoleSuperAdmin, models.ScopeParams{}, "csv")
	assert.Equal(t, MsgExportStudents, appErrors.FromError(err).Message)
}

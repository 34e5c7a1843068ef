package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/students-api/internal/middleware"
	"github.com/noah-isme/students-api/internal/models"
	"github.com/noah-isme/students-api/internal/service"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
	"github.com/noah-isme/students-api/pkg/response"
)

type studentService interface {
	List(ctx context.Context, role models.Role, params models.ScopeParams) ([]models.Student, error)
	Create(ctx context.Context, payload models.StudentPayload) (int64, error)
	Update(ctx context.Context, id string, payload models.StudentPayload) error
	Delete(ctx context.Context, id string) error
}

type exportService interface {
	Export(ctx context.Context, role models.Role, params models.ScopeParams, format string) (*service.ExportResult, error)
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students studentService
	exports  exportService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService, exports exportService) *StudentHandler {
	return &StudentHandler{students: students, exports: exports}
}

// List godoc
// @Summary List students visible to the caller's role
// @Tags Students
// @Produce json
// @Param token header string true "Unverified, caller-controlled identity token carrying a role"
// @Param collegeId query string false "Required for admin"
// @Param section query string false "Required for teacher"
// @Param studentId query string false "Required for student"
// @Success 200 {array} models.Student
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	role, _ := middleware.RoleFromContext(c)
	students, err := h.students.List(c.Request.Context(), role, scopeParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Export godoc
// @Summary Export students visible to the caller's role
// @Tags Students
// @Produce text/csv,application/pdf
// @Param token header string true "Identity token"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /students/export [get]
func (h *StudentHandler) Export(c *gin.Context) {
	role, _ := middleware.RoleFromContext(c)
	result, err := h.exports.Export(c.Request.Context(), role, scopeParams(c), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Body)
}

// Create godoc
// @Summary Create student
// @Tags Students
// @Accept json
// @Produce json
// @Param token header string true "Must resolve to super_admin"
// @Param payload body models.StudentPayload true "Student payload"
// @Success 201 {object} response.MessageBody
// @Failure 403 {object} response.ErrorBody
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	id, err := h.students.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, service.MsgStudentCreated, id)
}

// Update godoc
// @Summary Replace every field of a student
// @Tags Students
// @Accept json
// @Produce json
// @Param token header string true "Must resolve to super_admin"
// @Param id path string true "Student ID"
// @Param payload body models.StudentPayload true "Student payload"
// @Success 200 {object} response.MessageBody
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	if err := h.students.Update(c.Request.Context(), c.Param("id"), payload); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, service.MsgStudentUpdated)
}

// Delete godoc
// @Summary Delete student
// @Tags Students
// @Produce json
// @Param token header string true "Must resolve to super_admin"
// @Param id path string true "Student ID"
// @Success 200 {object} response.MessageBody
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, service.MsgStudentDeleted)
}

func scopeParams(c *gin.Context) models.ScopeParams {
	return models.ScopeParams{
		CollegeID: c.Query("collegeId"),
		Section:   c.Query("section"),
		StudentID: c.Query("studentId"),
	}
}

func bindPayload(c *gin.Context) (models.StudentPayload, bool) {
	var payload models.StudentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInvalidInput.Code, http.StatusBadRequest, service.MsgInvalidPayload))
		return payload, false
	}
	return payload, true
}

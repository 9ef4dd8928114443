package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/student-admin/internal/model"
	"github.com/stemsi/student-admin/internal/response"
	"github.com/stemsi/student-admin/internal/service"
	"github.com/stemsi/student-admin/internal/validator"
	"github.com/stemsi/student-admin/internal/view"
)

// StudentHandler serves the student list, detail and form views.
type StudentHandler struct {
	studentService *service.StudentService
	courseService  *service.CourseService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService, courseService *service.CourseService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		courseService:  courseService,
	}
}

// ListStudents godoc
// GET /api/v1/students
// Reloads the shared student list and returns it.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.LoadStudents(c.Request.Context())
	if err != nil {
		failUpstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// GetStudent godoc
// GET /api/v1/students/:id
// Returns the student with the catalog split into enrolled and available.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	detail := view.NewStudentDetailView(h.studentService, h.courseService)
	if err := detail.Load(c.Request.Context(), id); err != nil {
		failUpstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail.Detail())
}

// CreateStudent godoc
// POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	h.submitForm(c, nil, http.StatusCreated)
}

// UpdateStudent godoc
// PUT /api/v1/students/:id
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.submitForm(c, &model.Student{ID: id}, http.StatusOK)
}

// submitForm runs the student form, then reloads the shared list the way
// the list view does after its form closes. The form trims and validates,
// so REST and the console accept the same input.
func (h *StudentHandler) submitForm(c *gin.Context, existing *model.Student, status int) {
	var req model.StudentRequest
	if fields := validator.Decode(c, &req); fields != nil {
		failBind(c, fields)
		return
	}

	ctx := c.Request.Context()
	form := view.NewStudentForm(h.studentService, existing)
	form.Values = req
	saved, err := form.Submit(ctx)
	if err != nil {
		failUpstream(c, err)
		return
	}
	if !saved {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, form.Errors())
		return
	}

	list := view.NewStudentListView(h.studentService)
	defer list.Close()
	if err := list.AfterFormClosed(ctx, saved); err != nil {
		// The write went through; only the refresh failed.
		_ = c.Error(err)
	}
	response.Success(c, status, gin.H{"student": form.Saved()})
}

// DeleteStudent godoc
// DELETE /api/v1/students/:id
// The browser confirms before calling; the delete is followed by a reload.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	list := view.NewStudentListView(h.studentService)
	defer list.Close()

	deleted, err := list.Delete(c.Request.Context(), id, nil)
	if !deleted {
		failUpstream(c, err)
		return
	}
	if err != nil {
		_ = c.Error(err)
	}
	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}

// Enroll godoc
// POST /api/v1/students/:id/enroll/:course_id
func (h *StudentHandler) Enroll(c *gin.Context) {
	studentID, courseID, ok := parseEnrollmentIDs(c)
	if !ok {
		return
	}
	student, err := h.studentService.EnrollStudentInCourse(c.Request.Context(), studentID, courseID)
	if err != nil {
		failUpstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Unenroll godoc
// DELETE /api/v1/students/:id/unenroll/:course_id
func (h *StudentHandler) Unenroll(c *gin.Context) {
	studentID, courseID, ok := parseEnrollmentIDs(c)
	if !ok {
		return
	}
	student, err := h.studentService.UnenrollStudentFromCourse(c.Request.Context(), studentID, courseID)
	if err != nil {
		failUpstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

func parseEnrollmentIDs(c *gin.Context) (int64, int64, bool) {
	studentID, ok := parseID(c, "id")
	if !ok {
		return 0, 0, false
	}
	courseID, ok := parseID(c, "course_id")
	if !ok {
		return 0, 0, false
	}
	return studentID, courseID, true
}

// parseID reads a positive integer path parameter, answering 400 otherwise.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// failBind answers 400: INVALID_PAYLOAD for undecodable bodies,
// VALIDATION_ERROR with field messages otherwise.
func failBind(c *gin.Context, fields map[string]string) {
	if _, ok := fields["detail"]; ok && len(fields) == 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
}

// failUpstream reports a catalog failure. The cause is only logged.
func failUpstream(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	response.Fail(c, http.StatusBadGateway, response.ErrUpstreamFailed)
}

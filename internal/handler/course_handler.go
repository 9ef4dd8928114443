package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/student-admin/internal/model"
	"github.com/stemsi/student-admin/internal/response"
	"github.com/stemsi/student-admin/internal/service"
	"github.com/stemsi/student-admin/internal/validator"
	"github.com/stemsi/student-admin/internal/view"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListCourses godoc
// GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses := view.NewCourseListView(h.courseService)
	if err := courses.Load(c.Request.Context()); err != nil {
		failUpstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses.Courses()})
}

// CreateCourse godoc
// POST /api/v1/courses
// Responds with the reloaded catalog.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failBind(c, fields)
		return
	}

	courses := view.NewCourseListView(h.courseService)
	courses.Name = req.Name
	added, err := courses.AddCourse(c.Request.Context())
	switch {
	case !added && err == nil:
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{"name": "name is a required field"})
	case !added:
		failUpstream(c, err)
	default:
		if err != nil {
			_ = c.Error(err)
		}
		response.Success(c, http.StatusCreated, gin.H{"courses": courses.Courses()})
	}
}

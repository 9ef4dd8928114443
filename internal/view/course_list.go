package view

import (
	"context"
	"strings"

	"github.com/stemsi/student-admin/internal/model"
	"github.com/stemsi/student-admin/internal/validator"
)

// CourseCatalog lists and creates courses.
type CourseCatalog interface {
	GetAllCourses(ctx context.Context) ([]model.Course, error)
	CreateCourse(ctx context.Context, req model.CreateCourseRequest) (*model.Course, error)
}

// CourseListView shows the catalog with an inline "add course" form.
type CourseListView struct {
	catalog CourseCatalog
	courses []model.Course

	// Name is the add-course form field.
	Name string
}

func NewCourseListView(catalog CourseCatalog) *CourseListView {
	return &CourseListView{catalog: catalog, courses: []model.Course{}}
}

// Load replaces the shown catalog. On failure the previous one stays.
func (v *CourseListView) Load(ctx context.Context) error {
	courses, err := v.catalog.GetAllCourses(ctx)
	if err != nil {
		return err
	}
	v.courses = courses
	return nil
}

func (v *CourseListView) Courses() []model.Course {
	return v.courses
}

// AddCourse creates a course from Name, reloads the catalog and resets the
// form. An empty name is a no-op returning false.
func (v *CourseListView) AddCourse(ctx context.Context) (bool, error) {
	req := model.CreateCourseRequest{Name: strings.TrimSpace(v.Name)}
	if validator.Struct(req) != nil {
		return false, nil
	}
	if _, err := v.catalog.CreateCourse(ctx, req); err != nil {
		return false, err
	}
	v.Name = ""
	return true, v.Load(ctx)
}

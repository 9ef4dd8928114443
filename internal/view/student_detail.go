package view

import (
	"context"

	"github.com/stemsi/student-admin/internal/model"
)

// StudentSource fetches a single student and changes its enrollment.
type StudentSource interface {
	GetStudentByID(ctx context.Context, id int64) (*model.Student, error)
	EnrollStudentInCourse(ctx context.Context, studentID, courseID int64) (*model.Student, error)
	UnenrollStudentFromCourse(ctx context.Context, studentID, courseID int64) (*model.Student, error)
}

// CourseSource fetches the catalog.
type CourseSource interface {
	GetAllCourses(ctx context.Context) ([]model.Course, error)
}

// StudentDetailView shows one student with the catalog split into
// enrolled and available courses.
//
// After Enroll/Unenroll the two lists are a local projection: they are
// trusted until the next Load, which recomputes both from the server.
type StudentDetailView struct {
	students StudentSource
	courses  CourseSource

	student   *model.Student
	enrolled  []model.Course
	available []model.Course

	loadingStudent bool
	loadingCourses bool
}

func NewStudentDetailView(students StudentSource, courses CourseSource) *StudentDetailView {
	return &StudentDetailView{
		students:       students,
		courses:        courses,
		loadingStudent: true,
		loadingCourses: true,
	}
}

// Load fetches the student, then the catalog. A failed step leaves its
// loading flag set. An id of 0 loads nothing and clears both flags.
func (v *StudentDetailView) Load(ctx context.Context, id int64) error {
	if id == 0 {
		v.loadingStudent = false
		v.loadingCourses = false
		return nil
	}
	v.loadingStudent = true
	v.loadingCourses = true

	student, err := v.students.GetStudentByID(ctx, id)
	if err != nil {
		return err
	}
	v.student = student
	v.enrolled = append([]model.Course{}, student.Courses...)
	v.available = nil
	v.loadingStudent = false

	catalog, err := v.courses.GetAllCourses(ctx)
	if err != nil {
		return err
	}
	v.available = AvailableCourses(catalog, v.enrolled)
	v.loadingCourses = false
	return nil
}

// Enroll enrolls the shown student in course and, on success, moves the
// course from available to enrolled. There is no duplicate check.
func (v *StudentDetailView) Enroll(ctx context.Context, course model.Course) error {
	if v.student == nil {
		return nil
	}
	if _, err := v.students.EnrollStudentInCourse(ctx, v.student.ID, course.ID); err != nil {
		return err
	}
	v.enrolled = append(v.enrolled, course)
	v.available = withoutCourse(v.available, course.ID)
	return nil
}

// Unenroll is the mirror of Enroll.
func (v *StudentDetailView) Unenroll(ctx context.Context, course model.Course) error {
	if v.student == nil {
		return nil
	}
	if _, err := v.students.UnenrollStudentFromCourse(ctx, v.student.ID, course.ID); err != nil {
		return err
	}
	v.available = append(v.available, course)
	v.enrolled = withoutCourse(v.enrolled, course.ID)
	return nil
}

// FindCourse looks a course up in either list by id.
func (v *StudentDetailView) FindCourse(id int64) (model.Course, bool) {
	for _, list := range [][]model.Course{v.enrolled, v.available} {
		for _, c := range list {
			if c.ID == id {
				return c, true
			}
		}
	}
	return model.Course{}, false
}

func (v *StudentDetailView) Student() *model.Student   { return v.student }
func (v *StudentDetailView) Enrolled() []model.Course  { return v.enrolled }
func (v *StudentDetailView) Available() []model.Course { return v.available }
func (v *StudentDetailView) LoadingStudent() bool      { return v.loadingStudent }
func (v *StudentDetailView) LoadingCourses() bool      { return v.loadingCourses }

// Detail returns the current state as a response payload. It is only
// meaningful once a student has been loaded.
func (v *StudentDetailView) Detail() model.StudentDetail {
	d := model.StudentDetail{
		Enrolled:  append([]model.Course{}, v.enrolled...),
		Available: append([]model.Course{}, v.available...),
	}
	if v.student != nil {
		d.Student = *v.student
		d.Student.Courses = d.Enrolled
	}
	return d
}

package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/student-admin/internal/model"
)

func (s *Server) listStudents(c *gin.Context) {
	s.mu.Lock()
	out := make([]model.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, cloneStudent(st))
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

func (s *Server) getStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.studentIndex(id)
	if i < 0 {
		notFound(c, "Student", id)
		return
	}
	c.JSON(http.StatusOK, cloneStudent(s.students[i]))
}

func (s *Server) createStudent(c *gin.Context) {
	var req model.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	st := model.Student{ID: s.allocID(), FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Courses: []model.Course{}}
	s.students = append(s.students, st)
	s.mu.Unlock()
	c.JSON(http.StatusCreated, st)
}

func (s *Server) updateStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req model.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.studentIndex(id)
	if i < 0 {
		notFound(c, "Student", id)
		return
	}
	s.students[i].FirstName = req.FirstName
	s.students[i].LastName = req.LastName
	s.students[i].Email = req.Email
	c.JSON(http.StatusOK, cloneStudent(s.students[i]))
}

func (s *Server) deleteStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.studentIndex(id)
	if i < 0 {
		notFound(c, "Student", id)
		return
	}
	s.students = append(s.students[:i], s.students[i+1:]...)
	c.Status(http.StatusNoContent)
}

func (s *Server) enroll(c *gin.Context) {
	s.changeEnrollment(c, true)
}

func (s *Server) unenroll(c *gin.Context) {
	s.changeEnrollment(c, false)
}

// changeEnrollment treats the enrolled courses as a set keyed by id.
func (s *Server) changeEnrollment(c *gin.Context, enroll bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	courseID, ok := paramID(c, "course_id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.studentIndex(id)
	if i < 0 {
		notFound(c, "Student", id)
		return
	}
	ci := s.courseIndex(courseID)
	if ci < 0 {
		notFound(c, "Course", courseID)
		return
	}

	st := &s.students[i]
	kept := st.Courses[:0]
	for _, course := range st.Courses {
		if course.ID != courseID {
			kept = append(kept, course)
		}
	}
	st.Courses = kept
	if enroll {
		st.Courses = append(st.Courses, s.courses[ci])
	}
	c.JSON(http.StatusOK, cloneStudent(*st))
}

func (s *Server) listCourses(c *gin.Context) {
	s.mu.Lock()
	out := append([]model.Course{}, s.courses...)
	s.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

func (s *Server) createCourse(c *gin.Context) {
	var course model.Course
	if err := c.ShouldBindJSON(&course); err != nil || course.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"name": "Course name cannot be empty"})
		return
	}
	s.mu.Lock()
	course.ID = s.allocID()
	s.courses = append(s.courses, course)
	s.mu.Unlock()
	c.JSON(http.StatusCreated, course)
}

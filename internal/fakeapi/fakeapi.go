// Package fakeapi is an in-memory stand-in for the catalog REST API, used
// by tests across the module. It records every request it receives so
// callers can assert on call order.
package fakeapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/student-admin/internal/model"
)

// Call is one recorded request, e.g. "DELETE /api/students/3".
type Call string

// Server is an httptest server backed by in-memory students and courses.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	students []model.Student
	courses  []model.Course
	nextID   int64
	calls    []Call
	// reqIDs holds the X-Request-ID of each entry in calls.
	reqIDs  []string
	failing bool
}

// New starts a server with an empty catalog. URL()+"/api" is the base URL
// clients should use. Close it when done.
func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{nextID: 1}

	r := gin.New()
	r.Use(s.record)
	api := r.Group("/api")
	{
		api.GET("/students", s.listStudents)
		api.GET("/students/:id", s.getStudent)
		api.POST("/students", s.createStudent)
		api.PUT("/students/:id", s.updateStudent)
		api.DELETE("/students/:id", s.deleteStudent)
		api.POST("/students/:id/enroll/:course_id", s.enroll)
		api.DELETE("/students/:id/unenroll/:course_id", s.unenroll)
		api.GET("/courses", s.listCourses)
		api.POST("/courses", s.createCourse)
	}

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the API root to hand to apiclient.New.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

// Seed loads the demo catalog: three courses and three students with no
// enrollments.
func (s *Server) Seed() {
	s.AddCourse(model.Course{Name: "Introduction to Programming", CourseCode: "CS101", Professor: "Dr. Ada Lovelace", Credits: 3})
	s.AddCourse(model.Course{Name: "Calculus I", CourseCode: "MATH201", Professor: "Dr. Isaac Newton", Credits: 4})
	s.AddCourse(model.Course{Name: "World History", CourseCode: "HIST101", Professor: "Dr. Herodotus", Credits: 3})
	s.AddStudent(model.Student{FirstName: "Alice", LastName: "Johnson", Email: "alice.j@example.com"})
	s.AddStudent(model.Student{FirstName: "Bob", LastName: "Smith", Email: "bob.s@example.com"})
	s.AddStudent(model.Student{FirstName: "Charlie", LastName: "Brown", Email: "charlie.b@example.com"})
}

// AddCourse inserts a course directly, keeping c.ID when set.
func (s *Server) AddCourse(c model.Course) model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.allocID()
	} else if c.ID >= s.nextID {
		s.nextID = c.ID + 1
	}
	s.courses = append(s.courses, c)
	return c
}

// AddStudent inserts a student directly, keeping st.ID when set.
func (s *Server) AddStudent(st model.Student) model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID == 0 {
		st.ID = s.allocID()
	} else if st.ID >= s.nextID {
		s.nextID = st.ID + 1
	}
	if st.Courses == nil {
		st.Courses = []model.Course{}
	}
	s.students = append(s.students, st)
	return st
}

// SetFailing makes every subsequent request answer 500 until reset.
func (s *Server) SetFailing(failing bool) {
	s.mu.Lock()
	s.failing = failing
	s.mu.Unlock()
}

// Calls returns a copy of the request log.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// ResetCalls clears the request log.
func (s *Server) ResetCalls() {
	s.mu.Lock()
	s.calls = nil
	s.reqIDs = nil
	s.mu.Unlock()
}

// RequestIDs returns the X-Request-ID sent with each recorded request
// equal to c, oldest first.
func (s *Server) RequestIDs(c Call) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for i, got := range s.calls {
		if got == c {
			ids = append(ids, s.reqIDs[i])
		}
	}
	return ids
}

// CountCalls reports how many recorded requests equal c.
func (s *Server) CountCalls(c Call) int {
	n := 0
	for _, got := range s.Calls() {
		if got == c {
			n++
		}
	}
	return n
}

func (s *Server) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.calls = append(s.calls, Call(fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)))
	s.reqIDs = append(s.reqIDs, c.GetHeader("X-Request-ID"))
	failing := s.failing
	s.mu.Unlock()

	if failing {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred."})
		return
	}
	c.Next()
}

func notFound(c *gin.Context, kind string, id int64) {
	c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s not found with id: %d", kind, id)})
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

// studentIndex and courseIndex must be called with mu held.
func (s *Server) studentIndex(id int64) int {
	for i := range s.students {
		if s.students[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) courseIndex(id int64) int {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneStudent(st model.Student) model.Student {
	st.Courses = append([]model.Course{}, st.Courses...)
	return st
}

package model

// Student represents a student record as served by the catalog API.
// The id is always assigned server-side.
type Student struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Courses   []Course `json:"courses"`
}

// FullName joins first and last name for display.
func (s Student) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// StudentRequest is the body for creating or updating a student.
// Enrollment is never carried here; it has its own endpoints.
type StudentRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// StudentDetail is the detail view payload: the student plus the catalog
// partitioned into enrolled and available courses.
type StudentDetail struct {
	Student   Student  `json:"student"`
	Enrolled  []Course `json:"enrolledCourses"`
	Available []Course `json:"availableCourses"`
}

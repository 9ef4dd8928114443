package apiclient

import "fmt"

// PathStruct builds catalog API paths relative to the base URL.
type PathStruct struct{}

// Students returns the student collection path.
func (PathStruct) Students() string {
	return "/students"
}

// Student returns the path of a single student.
func (PathStruct) Student(id int64) string {
	return fmt.Sprintf("/students/%d", id)
}

// Enroll returns the path enrolling a student in a course.
func (PathStruct) Enroll(studentID, courseID int64) string {
	return fmt.Sprintf("/students/%d/enroll/%d", studentID, courseID)
}

// Unenroll returns the path removing a student from a course.
func (PathStruct) Unenroll(studentID, courseID int64) string {
	return fmt.Sprintf("/students/%d/unenroll/%d", studentID, courseID)
}

// Courses returns the course catalog path.
func (PathStruct) Courses() string {
	return "/courses"
}

var Path PathStruct

package model

// Course is a catalog entry a student can enroll in. Only ID and Name are
// guaranteed; the remaining details are shown when the API provides them.
type Course struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CourseCode  string `json:"courseCode,omitempty"`
	Professor   string `json:"professor,omitempty"`
	Description string `json:"description,omitempty"`
	Credits     int    `json:"credits,omitempty"`
}

// CreateCourseRequest is the payload for adding a course to the catalog.
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required"`
}

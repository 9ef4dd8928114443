package apiclient

import (
	"context"
	"net/http"

	"github.com/stemsi/student-admin/internal/model"
)

// ListStudents fetches every student with embedded courses.
func (c *Client) ListStudents(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := c.do(ctx, http.MethodGet, Path.Students(), nil, &students); err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// GetStudent fetches one student.
func (c *Client) GetStudent(ctx context.Context, id int64) (*model.Student, error) {
	s := &model.Student{}
	if err := c.do(ctx, http.MethodGet, Path.Student(id), nil, s); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent posts a new student and returns the server's record.
func (c *Client) CreateStudent(ctx context.Context, req model.StudentRequest) (*model.Student, error) {
	s := &model.Student{}
	if err := c.do(ctx, http.MethodPost, Path.Students(), req, s); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateStudent replaces a student's name and email.
func (c *Client) UpdateStudent(ctx context.Context, id int64, req model.StudentRequest) (*model.Student, error) {
	s := &model.Student{}
	if err := c.do(ctx, http.MethodPut, Path.Student(id), req, s); err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteStudent removes a student.
func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, Path.Student(id), nil, nil)
}

// Enroll adds a course to a student and returns the updated student.
func (c *Client) Enroll(ctx context.Context, studentID, courseID int64) (*model.Student, error) {
	s := &model.Student{}
	if err := c.do(ctx, http.MethodPost, Path.Enroll(studentID, courseID), nil, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Unenroll removes a course from a student and returns the updated student.
func (c *Client) Unenroll(ctx context.Context, studentID, courseID int64) (*model.Student, error) {
	s := &model.Student{}
	if err := c.do(ctx, http.MethodDelete, Path.Unenroll(studentID, courseID), nil, s); err != nil {
		return nil, err
	}
	return s, nil
}

package apiclient

import (
	"context"
	"net/http"

	"github.com/stemsi/student-admin/internal/model"
)

// ListCourses fetches the full catalog in server order.
func (c *Client) ListCourses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := c.do(ctx, http.MethodGet, Path.Courses(), nil, &courses); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// CreateCourse adds a course; the server assigns its id.
func (c *Client) CreateCourse(ctx context.Context, req model.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{}
	if err := c.do(ctx, http.MethodPost, Path.Courses(), req, course); err != nil {
		return nil, err
	}
	return course, nil
}

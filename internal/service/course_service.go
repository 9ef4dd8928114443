package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/student-admin/internal/model"
)

// CourseAPI is the catalog API surface the course service needs.
type CourseAPI interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	CreateCourse(ctx context.Context, req model.CreateCourseRequest) (*model.Course, error)
}

// CourseService is a stateless wrapper over catalog requests.
type CourseService struct {
	api CourseAPI
	log zerolog.Logger
}

func NewCourseService(api CourseAPI, log zerolog.Logger) *CourseService {
	return &CourseService{
		api: api,
		log: log.With().Str("component", "course_service").Logger(),
	}
}

func (s *CourseService) GetAllCourses(ctx context.Context) ([]model.Course, error) {
	return s.api.ListCourses(ctx)
}

func (s *CourseService) CreateCourse(ctx context.Context, req model.CreateCourseRequest) (*model.Course, error) {
	course, err := s.api.CreateCourse(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("course_id", course.ID).Str("name", course.Name).Msg("Course created")
	return course, nil
}

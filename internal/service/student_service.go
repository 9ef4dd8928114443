package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/student-admin/internal/model"
	"github.com/stemsi/student-admin/internal/store"
)

// StudentAPI is the catalog API surface the student service needs.
// *apiclient.Client satisfies it.
type StudentAPI interface {
	ListStudents(ctx context.Context) ([]model.Student, error)
	GetStudent(ctx context.Context, id int64) (*model.Student, error)
	CreateStudent(ctx context.Context, req model.StudentRequest) (*model.Student, error)
	UpdateStudent(ctx context.Context, id int64, req model.StudentRequest) (*model.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	Enroll(ctx context.Context, studentID, courseID int64) (*model.Student, error)
	Unenroll(ctx context.Context, studentID, courseID int64) (*model.Student, error)
}

// StudentService wraps student requests and owns publishing to the shared
// student store. Only LoadStudents writes to the store; every mutation
// leaves resynchronization to the caller.
type StudentService struct {
	api   StudentAPI
	store *store.StudentStore
	log   zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(api StudentAPI, st *store.StudentStore, log zerolog.Logger) *StudentService {
	return &StudentService{
		api:   api,
		store: st,
		log:   log.With().Str("component", "student_service").Logger(),
	}
}

// Students returns a read-only subscription on the shared student list.
func (s *StudentService) Students() *store.Subscription {
	return s.store.Subscribe()
}

// Snapshot returns the most recently published student list.
func (s *StudentService) Snapshot() []model.Student {
	return s.store.Snapshot()
}

// LoadStudents fetches all students and publishes them. Concurrent loads
// are not deduplicated; whichever response completes last is what
// subscribers end up with. On failure the store is left untouched.
func (s *StudentService) LoadStudents(ctx context.Context) ([]model.Student, error) {
	students, err := s.api.ListStudents(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Load students failed")
		return nil, err
	}
	s.store.Publish(students)
	s.log.Debug().Int("count", len(students)).Msg("Students published")
	return students, nil
}

// GetStudentByID fetches one student without touching the store.
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*model.Student, error) {
	return s.api.GetStudent(ctx, id)
}

// CreateStudent creates a student.
func (s *StudentService) CreateStudent(ctx context.Context, req model.StudentRequest) (*model.Student, error) {
	return s.api.CreateStudent(ctx, req)
}

// UpdateStudent modifies a student's details.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req model.StudentRequest) (*model.Student, error) {
	return s.api.UpdateStudent(ctx, id, req)
}

// DeleteStudent removes a student by ID.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.api.DeleteStudent(ctx, id)
}

// EnrollStudentInCourse enrolls a student in a course.
func (s *StudentService) EnrollStudentInCourse(ctx context.Context, studentID, courseID int64) (*model.Student, error) {
	return s.api.Enroll(ctx, studentID, courseID)
}

// UnenrollStudentFromCourse removes a student from a course.
func (s *StudentService) UnenrollStudentFromCourse(ctx context.Context, studentID, courseID int64) (*model.Student, error) {
	return s.api.Unenroll(ctx, studentID, courseID)
}

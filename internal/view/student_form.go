package view

import (
	"context"
	"strings"

	"github.com/stemsi/student-admin/internal/model"
	"github.com/stemsi/student-admin/internal/validator"
)

// StudentWriter creates and updates students.
type StudentWriter interface {
	CreateStudent(ctx context.Context, req model.StudentRequest) (*model.Student, error)
	UpdateStudent(ctx context.Context, id int64, req model.StudentRequest) (*model.Student, error)
}

// StudentForm is the create/edit form. It is in edit mode when opened with
// an existing student, and prefilled from it.
type StudentForm struct {
	writer   StudentWriter
	existing *model.Student

	Values model.StudentRequest
	errors map[string]string
	saved  *model.Student
}

func NewStudentForm(writer StudentWriter, existing *model.Student) *StudentForm {
	f := &StudentForm{writer: writer, existing: existing}
	if existing != nil {
		f.Values = model.StudentRequest{
			FirstName: existing.FirstName,
			LastName:  existing.LastName,
			Email:     existing.Email,
		}
	}
	return f
}

// EditMode reports whether the form updates an existing student.
func (f *StudentForm) EditMode() bool {
	return f.existing != nil
}

// Validate refreshes Errors and reports whether the values are acceptable.
func (f *StudentForm) Validate() bool {
	f.Values.FirstName = strings.TrimSpace(f.Values.FirstName)
	f.Values.LastName = strings.TrimSpace(f.Values.LastName)
	f.Values.Email = strings.TrimSpace(f.Values.Email)
	f.errors = validator.Struct(f.Values)
	return f.errors == nil
}

// Errors returns field messages from the last validation, nil when valid.
func (f *StudentForm) Errors() map[string]string {
	return f.errors
}

// Submit saves the form. Invalid values make it a no-op returning false
// without any request. On success it returns true so the opener can
// refresh its list.
func (f *StudentForm) Submit(ctx context.Context) (bool, error) {
	if !f.Validate() {
		return false, nil
	}

	var (
		saved *model.Student
		err   error
	)
	if f.EditMode() {
		saved, err = f.writer.UpdateStudent(ctx, f.existing.ID, f.Values)
	} else {
		saved, err = f.writer.CreateStudent(ctx, f.Values)
	}
	if err != nil {
		return false, err
	}
	f.saved = saved
	return true, nil
}

// Saved returns the server's record after a successful Submit.
func (f *StudentForm) Saved() *model.Student {
	return f.saved
}

package view

import (
	"context"

	"github.com/stemsi/student-admin/internal/model"
	"github.com/stemsi/student-admin/internal/store"
)

// DeleteConfirmMessage is the question asked before deleting a student.
const DeleteConfirmMessage = "Are you sure you want to delete this student?"

// Confirmer asks the user a yes/no question.
type Confirmer func(message string) bool

// StudentRoster is the student service surface the list view uses.
type StudentRoster interface {
	Students() *store.Subscription
	LoadStudents(ctx context.Context) ([]model.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// StudentListView renders whatever the shared student stream last
// published. It never mutates the list itself.
type StudentListView struct {
	roster   StudentRoster
	sub      *store.Subscription
	students []model.Student
}

// NewStudentListView subscribes to the shared student stream. Call Close
// when the view goes away.
func NewStudentListView(roster StudentRoster) *StudentListView {
	return &StudentListView{
		roster:   roster,
		sub:      roster.Students(),
		students: []model.Student{},
	}
}

// Refresh asks for a reload; the result arrives through the stream.
func (v *StudentListView) Refresh(ctx context.Context) error {
	_, err := v.roster.LoadStudents(ctx)
	return err
}

// Students returns the latest published list.
func (v *StudentListView) Students() []model.Student {
	for {
		select {
		case latest, ok := <-v.sub.C():
			if !ok {
				return v.students
			}
			v.students = latest
		default:
			return v.students
		}
	}
}

// Find returns the student with id from the latest published list.
func (v *StudentListView) Find(id int64) (*model.Student, bool) {
	for _, s := range v.Students() {
		if s.ID == id {
			st := s
			return &st, true
		}
	}
	return nil, false
}

// Delete asks for confirmation, then deletes the student and reloads the
// list, in that order. It reports whether a delete was issued.
func (v *StudentListView) Delete(ctx context.Context, id int64, confirm Confirmer) (bool, error) {
	if confirm != nil && !confirm(DeleteConfirmMessage) {
		return false, nil
	}
	if err := v.roster.DeleteStudent(ctx, id); err != nil {
		return false, err
	}
	return true, v.Refresh(ctx)
}

// AfterFormClosed reloads the list when the form reports a save.
func (v *StudentListView) AfterFormClosed(ctx context.Context, saved bool) error {
	if !saved {
		return nil
	}
	return v.Refresh(ctx)
}

// Close unsubscribes from the stream.
func (v *StudentListView) Close() {
	v.sub.Close()
}

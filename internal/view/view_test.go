package view

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/student-admin/internal/apiclient"
	"github.com/stemsi/student-admin/internal/fakeapi"
	"github.com/stemsi/student-admin/internal/model"
	"github.com/stemsi/student-admin/internal/service"
	"github.com/stemsi/student-admin/internal/store"
)

type fixture struct {
	api      *fakeapi.Server
	store    *store.StudentStore
	students *service.StudentService
	courses  *service.CourseService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	api := fakeapi.New()
	t.Cleanup(api.Close)
	client := apiclient.New(api.BaseURL(), 0, zerolog.Nop())
	st := store.NewStudentStore()
	return &fixture{
		api:      api,
		store:    st,
		students: service.NewStudentService(client, st, zerolog.Nop()),
		courses:  service.NewCourseService(client, zerolog.Nop()),
	}
}

func assertCalls(t *testing.T, got []fakeapi.Call, want ...fakeapi.Call) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}

func courseIDs(courses []model.Course) []int64 {
	ids := make([]int64, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

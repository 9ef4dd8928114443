package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/student-admin/internal/apiclient"
	"github.com/stemsi/student-admin/internal/fakeapi"
	"github.com/stemsi/student-admin/internal/model"
	"github.com/stemsi/student-admin/internal/store"
)

func newStudentService(t *testing.T) (*StudentService, *fakeapi.Server, *store.StudentStore) {
	t.Helper()
	api := fakeapi.New()
	t.Cleanup(api.Close)
	st := store.NewStudentStore()
	client := apiclient.New(api.BaseURL(), 0, zerolog.Nop())
	return NewStudentService(client, st, zerolog.Nop()), api, st
}

func TestLoadStudents_PublishesAndReturns(t *testing.T) {
	svc, api, st := newStudentService(t)
	api.Seed()

	got, err := svc.LoadStudents(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("returned %d students, want 3", len(got))
	}
	if snap := st.Snapshot(); len(snap) != 3 || snap[0].FirstName != "Alice" {
		t.Errorf("store = %+v", snap)
	}
}

func TestLoadStudents_FailureKeepsPreviousState(t *testing.T) {
	svc, api, st := newStudentService(t)
	api.Seed()
	if _, err := svc.LoadStudents(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	api.SetFailing(true)
	if _, err := svc.LoadStudents(context.Background()); !errors.Is(err, apiclient.ErrRequestFailed) {
		t.Fatalf("expected request failure, got %v", err)
	}
	if len(st.Snapshot()) != 3 {
		t.Errorf("failed load must not change state, got %+v", st.Snapshot())
	}
}

func TestMutations_DoNotTouchStore(t *testing.T) {
	svc, api, st := newStudentService(t)
	ctx := context.Background()
	math := api.AddCourse(model.Course{Name: "Math"})

	created, err := svc.CreateStudent(ctx, model.StudentRequest{FirstName: "John", LastName: "Doe", Email: "john@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpdateStudent(ctx, created.ID, model.StudentRequest{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.EnrollStudentInCourse(ctx, created.ID, math.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := svc.UnenrollStudentFromCourse(ctx, created.ID, math.ID); err != nil {
		t.Fatalf("unenroll: %v", err)
	}
	if _, err := svc.GetStudentByID(ctx, created.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(st.Snapshot()) != 0 {
		t.Fatalf("store should stay empty until LoadStudents, got %+v", st.Snapshot())
	}

	if err := svc.DeleteStudent(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if api.CountCalls("GET /api/students") != 0 {
		t.Error("mutations must not trigger a reload on their own")
	}
}

// gatedAPI lets a test decide the order in which ListStudents calls return.
type gatedAPI struct {
	StudentAPI
	mu      sync.Mutex
	pending []chan []model.Student
	started chan struct{}
}

func (g *gatedAPI) ListStudents(ctx context.Context) ([]model.Student, error) {
	ch := make(chan []model.Student)
	g.mu.Lock()
	g.pending = append(g.pending, ch)
	g.mu.Unlock()
	g.started <- struct{}{}
	return <-ch, nil
}

func TestLoadStudents_LastCompletedWins(t *testing.T) {
	api := &gatedAPI{started: make(chan struct{}, 2)}
	st := store.NewStudentStore()
	svc := NewStudentService(api, st, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.LoadStudents(context.Background())
		}()
	}
	<-api.started
	<-api.started

	// The first-issued request completes last, so its value must win.
	api.mu.Lock()
	first, second := api.pending[0], api.pending[1]
	api.mu.Unlock()

	second <- []model.Student{{ID: 2}}
	waitFor(t, st, 2)
	first <- []model.Student{{ID: 1}}
	wg.Wait()

	if snap := st.Snapshot(); len(snap) != 1 || snap[0].ID != 1 {
		t.Errorf("store = %+v, want the last completed response", snap)
	}
}

func waitFor(t *testing.T, st *store.StudentStore, id int64) {
	t.Helper()
	sub := st.Subscribe()
	defer sub.Close()
	for v := range sub.C() {
		if len(v) == 1 && v[0].ID == id {
			return
		}
	}
	t.Fatalf("store closed before id %d was published", id)
}

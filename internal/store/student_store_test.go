package store

import (
	"testing"
	"time"

	"github.com/stemsi/student-admin/internal/model"
)

func receive(t *testing.T, sub *Subscription) []model.Student {
	t.Helper()
	select {
	case v, ok := <-sub.C():
		if !ok {
			t.Fatal("subscription closed unexpectedly")
		}
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a published value")
	}
	return nil
}

func TestSubscribe_DeliversCurrentValueFirst(t *testing.T) {
	s := NewStudentStore()

	sub := s.Subscribe()
	defer sub.Close()

	if got := receive(t, sub); len(got) != 0 {
		t.Fatalf("new store should start empty, got %+v", got)
	}

	s.Publish([]model.Student{{ID: 1, FirstName: "Alice"}})
	late := s.Subscribe()
	defer late.Close()

	if got := receive(t, late); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("late subscriber should see the current value, got %+v", got)
	}
}

func TestPublish_ReplacesNeverMerges(t *testing.T) {
	s := NewStudentStore()
	s.Publish([]model.Student{{ID: 1}, {ID: 2}})
	s.Publish([]model.Student{{ID: 3}})

	got := s.Snapshot()
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("snapshot = %+v, want only id 3", got)
	}
}

func TestSubscription_SlowReaderSeesLatest(t *testing.T) {
	s := NewStudentStore()
	sub := s.Subscribe()
	defer sub.Close()

	s.Publish([]model.Student{{ID: 1}})
	s.Publish([]model.Student{{ID: 2}})
	s.Publish([]model.Student{{ID: 3}})

	got := receive(t, sub)
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("got %+v, want latest value only", got)
	}
	select {
	case v := <-sub.C():
		t.Errorf("unexpected extra value %+v", v)
	default:
	}
}

func TestSnapshot_IsIsolatedFromCallers(t *testing.T) {
	s := NewStudentStore()
	in := []model.Student{{ID: 1, Courses: []model.Course{{ID: 10, Name: "Math"}}}}
	s.Publish(in)

	in[0].FirstName = "mutated"
	in[0].Courses[0].Name = "mutated"

	out := s.Snapshot()
	out[0].Courses[0].Name = "also mutated"

	again := s.Snapshot()
	if again[0].FirstName != "" || again[0].Courses[0].Name != "Math" {
		t.Errorf("store state leaked to callers: %+v", again)
	}
}

func TestClose(t *testing.T) {
	s := NewStudentStore()
	sub := s.Subscribe()
	receive(t, sub)

	sub.Close()
	sub.Close()
	if _, ok := <-sub.C(); ok {
		t.Error("channel should be closed after Close")
	}

	other := s.Subscribe()
	receive(t, other)
	s.Close()
	if _, ok := <-other.C(); ok {
		t.Error("store Close should close subscriptions")
	}

	s.Publish([]model.Student{{ID: 9}})
	if _, ok := <-s.Subscribe().C(); ok {
		t.Error("subscribing to a closed store should yield a closed channel")
	}
}

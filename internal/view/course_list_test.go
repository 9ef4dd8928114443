package view

import (
	"context"
	"testing"
)

func TestCourseList_PhysicsOnEmptyCatalog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v := NewCourseListView(f.courses)
	if err := v.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(v.Courses()) != 0 {
		t.Fatalf("catalog should start empty, got %+v", v.Courses())
	}

	v.Name = "Physics"
	added, err := v.AddCourse(ctx)
	if err != nil || !added {
		t.Fatalf("AddCourse = %v, %v", added, err)
	}

	got := v.Courses()
	if len(got) != 1 || got[0].Name != "Physics" || got[0].ID == 0 {
		t.Errorf("catalog = %+v, want one server-assigned Physics", got)
	}
	if v.Name != "" {
		t.Errorf("form should reset, Name = %q", v.Name)
	}
	assertCalls(t, f.api.Calls(), "GET /api/courses", "POST /api/courses", "GET /api/courses")
}

func TestCourseList_EmptyNameIsNoop(t *testing.T) {
	f := newFixture(t)

	v := NewCourseListView(f.courses)
	v.Name = "   "
	added, err := v.AddCourse(context.Background())
	if err != nil || added {
		t.Fatalf("AddCourse = %v, %v", added, err)
	}
	if len(f.api.Calls()) != 0 {
		t.Errorf("no request expected, got %v", f.api.Calls())
	}
}

func TestCourseList_FailedLoadKeepsCatalog(t *testing.T) {
	f := newFixture(t)
	f.api.Seed()
	ctx := context.Background()

	v := NewCourseListView(f.courses)
	if err := v.Load(ctx); err != nil {
		t.Fatal(err)
	}
	f.api.SetFailing(true)
	if err := v.Load(ctx); err == nil {
		t.Fatal("expected failure")
	}
	if len(v.Courses()) != 3 {
		t.Errorf("catalog = %+v", v.Courses())
	}
}

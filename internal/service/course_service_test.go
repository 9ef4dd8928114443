package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/student-admin/internal/apiclient"
	"github.com/stemsi/student-admin/internal/fakeapi"
	"github.com/stemsi/student-admin/internal/model"
)

func TestCourseService_CreateThenList(t *testing.T) {
	api := fakeapi.New()
	defer api.Close()
	svc := NewCourseService(apiclient.New(api.BaseURL(), 0, zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.CreateCourse(ctx, model.CreateCourseRequest{Name: "Physics"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	courses, err := svc.GetAllCourses(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != created.ID || courses[0].Name != "Physics" {
		t.Errorf("catalog = %+v", courses)
	}
}

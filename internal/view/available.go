// Package view holds the console's view models. Each view is owned by a
// single goroutine (an HTTP request or the terminal loop) and is not safe
// for concurrent use; the shared student list lives in the store.
package view

import "github.com/stemsi/student-admin/internal/model"

// AvailableCourses returns the catalog courses whose id is not among the
// enrolled ones, keeping catalog order.
func AvailableCourses(catalog, enrolled []model.Course) []model.Course {
	enrolledIDs := make(map[int64]struct{}, len(enrolled))
	for _, c := range enrolled {
		enrolledIDs[c.ID] = struct{}{}
	}

	available := make([]model.Course, 0, len(catalog))
	for _, c := range catalog {
		if _, ok := enrolledIDs[c.ID]; !ok {
			available = append(available, c)
		}
	}
	return available
}

func withoutCourse(courses []model.Course, id int64) []model.Course {
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Package store holds the shared "all students" state. A StudentStore is
// created empty, replaced wholesale on every publish and handed to
// consumers only as a read-only Subscription.
package store

import (
	"sync"

	"github.com/stemsi/student-admin/internal/model"
)

// StudentStore is the single source of truth for the student list.
type StudentStore struct {
	mu      sync.Mutex
	current []model.Student
	subs    map[*Subscription]struct{}
	closed  bool
}

// NewStudentStore returns an empty store.
func NewStudentStore() *StudentStore {
	return &StudentStore{
		current: []model.Student{},
		subs:    make(map[*Subscription]struct{}),
	}
}

// Publish replaces the whole collection and notifies every subscriber.
// It never merges with the previous value.
func (s *StudentStore) Publish(students []model.Student) {
	snapshot := copyStudents(students)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.current = snapshot
	for sub := range s.subs {
		sub.offer(snapshot)
	}
}

// Snapshot returns a copy of the latest published collection.
func (s *StudentStore) Snapshot() []model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyStudents(s.current)
}

// Subscribe registers a consumer. The current value is delivered first.
func (s *StudentStore) Subscribe() *Subscription {
	sub := &Subscription{
		ch:    make(chan []model.Student, 1),
		store: s,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(sub.ch)
		sub.done = true
		return sub
	}
	s.subs[sub] = struct{}{}
	sub.offer(s.current)
	return sub
}

// Close ends every subscription. Further publishes are ignored.
func (s *StudentStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for sub := range s.subs {
		sub.finish()
	}
	s.subs = nil
}

func (s *StudentStore) remove(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[sub]; !ok {
		return
	}
	delete(s.subs, sub)
	sub.finish()
}

// Subscription is a read-only handle on the store. A slow reader only
// ever sees the newest value; values published in between are dropped.
type Subscription struct {
	ch    chan []model.Student
	store *StudentStore
	// done is guarded by store.mu.
	done bool
}

// C delivers published collections. It is closed when the subscription
// or the store is closed. Receivers must not modify the slices.
func (sub *Subscription) C() <-chan []model.Student {
	return sub.ch
}

// Close unsubscribes. Safe to call more than once.
func (sub *Subscription) Close() {
	sub.store.remove(sub)
}

// offer must be called with store.mu held. The buffer holds one value,
// so a pending stale value is swapped for the new one.
func (sub *Subscription) offer(students []model.Student) {
	if sub.done {
		return
	}
	select {
	case <-sub.ch:
	default:
	}
	sub.ch <- students
}

func (sub *Subscription) finish() {
	if sub.done {
		return
	}
	sub.done = true
	close(sub.ch)
}

func copyStudents(in []model.Student) []model.Student {
	out := make([]model.Student, len(in))
	for i, st := range in {
		st.Courses = append([]model.Course{}, st.Courses...)
		out[i] = st
	}
	return out
}

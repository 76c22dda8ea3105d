// Package storage holds the in-memory task collections owned by the manager:
// a priority-ordered pending store and a completion-ordered history store.
package storage

import (
	"slices"
	"sort"

	"tasktrack/internal/task"
)

// PendingStore keeps tasks sorted by descending priority. Tasks of equal
// priority stay in insertion order.
type PendingStore struct {
	tasks []*task.Task
}

func NewPendingStore() *PendingStore {
	return &PendingStore{}
}

func (s *PendingStore) Enqueue(t *task.Task) {
	// first position holding a strictly lower priority; equal priorities stay ahead
	i := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].Priority() < t.Priority()
	})
	s.tasks = slices.Insert(s.tasks, i, t)
}

// Dequeue removes and returns the highest priority task.
// It returns false and leaves the store untouched when empty.
func (s *PendingStore) Dequeue() (*task.Task, bool) {
	if s.IsEmpty() {
		return nil, false
	}
	head := s.tasks[0]
	s.tasks[0] = nil
	s.tasks = s.tasks[1:]
	return head, true
}

func (s *PendingStore) IsEmpty() bool {
	return len(s.tasks) == 0
}

func (s *PendingStore) Len() int {
	return len(s.tasks)
}

// PeekAll returns copies of the pending tasks in priority order.
func (s *PendingStore) PeekAll() []task.Task {
	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	return out
}

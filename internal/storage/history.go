package storage

import "tasktrack/internal/task"

// HistoryStore records completed tasks; the last element is the most
// recently completed one.
type HistoryStore struct {
	tasks []*task.Task
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

func (s *HistoryStore) Push(t *task.Task) {
	s.tasks = append(s.tasks, t)
}

func (s *HistoryStore) Pop() (*task.Task, bool) {
	if s.IsEmpty() {
		return nil, false
	}
	last := len(s.tasks) - 1
	t := s.tasks[last]
	s.tasks[last] = nil
	s.tasks = s.tasks[:last]
	return t, true
}

func (s *HistoryStore) IsEmpty() bool {
	return len(s.tasks) == 0
}

func (s *HistoryStore) Len() int {
	return len(s.tasks)
}

// MostRecent returns a copy of the last pushed task without removing it.
func (s *HistoryStore) MostRecent() (task.Task, bool) {
	if s.IsEmpty() {
		return task.Task{}, false
	}
	return *s.tasks[len(s.tasks)-1], true
}

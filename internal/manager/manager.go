// Package manager mediates task creation, lookup, completion and queries
// over a pending store and a completion history.
package manager

import (
	"go.uber.org/zap"

	"tasktrack/internal/storage"
	"tasktrack/internal/task"
)

// Manager owns the pending and history stores and assigns task ids.
// It is not safe for concurrent use; a single control thread drives it.
type Manager struct {
	pending *storage.PendingStore
	history *storage.HistoryStore
	logger  *zap.Logger
	nextID  int
}

// Stats summarizes the manager state for display.
type Stats struct {
	Pending   int
	Completed int
	NextID    int
}

type Option func(*Manager)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func New(opts ...Option) *Manager {
	m := &Manager{
		pending: storage.NewPendingStore(),
		history: storage.NewHistoryStore(),
		logger:  zap.NewNop(),
		nextID:  1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create adds a pending task under the next unused id and returns a copy of it.
// Input is expected to be validated by the caller.
func (m *Manager) Create(description string, priority int) task.Task {
	t := task.New(m.nextID, description, priority)
	m.pending.Enqueue(t)
	m.nextID++
	m.logger.Debug("task created",
		zap.Int("id", t.ID()),
		zap.Int("priority", t.Priority()),
		zap.Int("pending", m.pending.Len()))
	return *t
}

// FindByID looks the id up among pending tasks only. Completed tasks are
// not found.
func (m *Manager) FindByID(id int) (task.Task, bool) {
	for _, t := range m.pending.PeekAll() {
		if t.ID() == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// CompleteHighestPriority moves the most urgent pending task into the history,
// marked completed. It returns false and changes nothing when no task is pending.
func (m *Manager) CompleteHighestPriority() (task.Task, bool) {
	t, ok := m.pending.Dequeue()
	if !ok {
		return task.Task{}, false
	}
	t.MarkCompleted()
	m.history.Push(t)
	m.logger.Debug("task completed",
		zap.Int("id", t.ID()),
		zap.Int("priority", t.Priority()),
		zap.Int("pending", m.pending.Len()))
	return *t, true
}

func (m *Manager) ListAll() []task.Task {
	return m.pending.PeekAll()
}

func (m *Manager) ListIncomplete() []task.Task {
	all := m.pending.PeekAll()
	out := all[:0]
	for _, t := range all {
		if !t.Completed() {
			out = append(out, t)
		}
	}
	return out
}

func (m *Manager) LastCompleted() (task.Task, bool) {
	return m.history.MostRecent()
}

func (m *Manager) Stats() Stats {
	return Stats{
		Pending:   m.pending.Len(),
		Completed: m.history.Len(),
		NextID:    m.nextID,
	}
}

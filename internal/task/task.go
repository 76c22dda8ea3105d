// Package task holds the unit of work tracked by the manager.
package task

import "fmt"

// Task is a description with a priority and a one-way completion flag.
// Higher priority values are more urgent.
type Task struct {
	id          int
	description string
	priority    int
	completed   bool
}

func New(id int, description string, priority int) *Task {
	return &Task{id: id, description: description, priority: priority}
}

func (t Task) ID() int             { return t.id }
func (t Task) Description() string { return t.description }
func (t Task) Priority() int       { return t.priority }
func (t Task) Completed() bool     { return t.completed }

// MarkCompleted flips the task to completed. Calling it again has no effect.
func (t *Task) MarkCompleted() {
	t.completed = true
}

func (t Task) String() string {
	return fmt.Sprintf("ID: %d, Description: %s, Priority: %d, Completed: %t",
		t.id, t.description, t.priority, t.completed)
}

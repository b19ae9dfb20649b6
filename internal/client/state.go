// Package client keeps a local copy of the task list in step with the server.
//
// State changes are made only by Reduce, a pure function of the current State
// and an Event. Effects perform one boundary call each and return the Event
// describing its outcome. Controller combines the two for synchronous callers;
// the terminal UI runs effects asynchronously and feeds their events back
// through Reduce.
package client

import (
	stderrors "errors"

	"todo-tracker/internal/domain"
)

// ErrNotEditing is reported when a draft operation is attempted with no
// active edit session.
var ErrNotEditing = stderrors.New("no task is being edited")

// EditSession is the single in-progress edit.
type EditSession struct {
	ID    int64
	Draft domain.Draft
}

// State is the client's view of the task list.
type State struct {
	// Tasks mirrors the server's order as of the last refresh, plus any
	// tasks created since, appended at the end.
	Tasks []domain.Task
	// Editing is nil when idle.
	Editing *EditSession
	// LastError is the failure of the most recent operation, or nil if it
	// succeeded.
	LastError error
}

// IsEditing reports whether the task with the given id is being edited.
func (s State) IsEditing(id int64) bool {
	return s.Editing != nil && s.Editing.ID == id
}

// Find returns the cached task with the given id.
func (s State) Find(id int64) (domain.Task, bool) {
	for _, task := range s.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return domain.Task{}, false
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{
		Tasks:     cloneTasks(s.Tasks),
		LastError: s.LastError,
	}
	if s.Editing != nil {
		out.Editing = &EditSession{ID: s.Editing.ID, Draft: cloneDraft(s.Editing.Draft)}
	}
	return out
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	for i, task := range tasks {
		out[i] = task
		out[i].Description = domain.CloneString(task.Description)
	}
	return out
}

func cloneDraft(d domain.Draft) domain.Draft {
	d.Description = domain.CloneString(d.Description)
	return d
}

package client

import "todo-tracker/internal/domain"

// Event is an input to Reduce.
type Event interface {
	event()
}

// Refreshed carries the server's full task list.
type Refreshed struct {
	Tasks []domain.Task
}

// Created carries a task confirmed by the server.
type Created struct {
	Task domain.Task
}

// EditBegun starts editing a task, replacing any active session.
type EditBegun struct {
	Task domain.Task
}

// DraftChanged replaces the draft of the active session.
type DraftChanged struct {
	Draft domain.Draft
}

// EditCancelled discards the active session.
type EditCancelled struct{}

// Saved carries the server's copy of an updated task.
type Saved struct {
	Task domain.Task
}

// Deleted reports that the server removed a task.
type Deleted struct {
	ID int64
}

// DeleteDeclined reports that the user did not confirm a delete.
type DeleteDeclined struct {
	ID int64
}

// Failed reports a failed operation. Op names the operation for display.
type Failed struct {
	Op  string
	Err error
}

func (Refreshed) event()      {}
func (Created) event()        {}
func (EditBegun) event()      {}
func (DraftChanged) event()   {}
func (EditCancelled) event()  {}
func (Saved) event()          {}
func (Deleted) event()        {}
func (DeleteDeclined) event() {}
func (Failed) event()         {}

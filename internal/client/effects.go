package client

import (
	"context"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/validation"
)

// Boundary is the remote task API as seen by the client.
type Boundary interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, draft domain.Draft) (domain.Task, error)
	Update(ctx context.Context, id int64, draft domain.Draft) (domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// Operation names used in Failed events.
const (
	OpRefresh = "refresh"
	OpCreate  = "create"
	OpSave    = "save"
	OpDelete  = "delete"
	OpEdit    = "edit"
)

// Effects performs boundary calls. Drafts are checked locally first, and an
// invalid draft never reaches the boundary.
type Effects struct {
	boundary  Boundary
	validator *validation.TaskValidator
}

// NewEffects creates Effects using the given validator, or the default
// limits when validator is nil.
func NewEffects(boundary Boundary, validator *validation.TaskValidator) *Effects {
	if validator == nil {
		validator = validation.NewTaskValidator()
	}
	return &Effects{boundary: boundary, validator: validator}
}

// Refresh fetches the full list.
func (e *Effects) Refresh(ctx context.Context) Event {
	tasks, err := e.boundary.List(ctx)
	if err != nil {
		return Failed{Op: OpRefresh, Err: err}
	}
	return Refreshed{Tasks: tasks}
}

// Create submits a new task. An empty status means pending.
func (e *Effects) Create(ctx context.Context, draft domain.Draft) Event {
	if draft.Status == "" {
		draft.Status = domain.DefaultStatus
	}
	cleaned, err := e.checkDraft(draft)
	if err != nil {
		return Failed{Op: OpCreate, Err: err}
	}

	task, err := e.boundary.Create(ctx, cleaned)
	if err != nil {
		return Failed{Op: OpCreate, Err: err}
	}
	return Created{Task: task}
}

// Save submits the session's draft as a full replacement of the task.
func (e *Effects) Save(ctx context.Context, session EditSession) Event {
	cleaned, err := e.checkDraft(session.Draft)
	if err != nil {
		return Failed{Op: OpSave, Err: err}
	}

	task, err := e.boundary.Update(ctx, session.ID, cleaned)
	if err != nil {
		return Failed{Op: OpSave, Err: err}
	}
	return Saved{Task: task}
}

// Delete removes a task. Confirmation is the caller's job.
func (e *Effects) Delete(ctx context.Context, id int64) Event {
	if err := e.boundary.Delete(ctx, id); err != nil {
		return Failed{Op: OpDelete, Err: err}
	}
	return Deleted{ID: id}
}

func (e *Effects) checkDraft(draft domain.Draft) (domain.Draft, error) {
	cleaned, err := e.validator.ValidateDraft(draft)
	if err != nil {
		return domain.Draft{}, errors.NewValidationError("invalid task", err)
	}
	return cleaned, nil
}

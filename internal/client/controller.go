package client

import (
	"context"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/validation"
)

// Confirmer asks the user to confirm deleting a task. task is the cached
// copy, or a zero Task with only ID set when it is not cached.
type Confirmer interface {
	Confirm(task domain.Task) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(task domain.Task) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(task domain.Task) bool {
	return f(task)
}

// Controller drives State through Reduce, running each effect synchronously.
// It is meant for a single owner and is not safe for concurrent use.
type Controller struct {
	state   State
	effects *Effects
	confirm Confirmer
}

// ControllerOption configures a Controller.
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	validator *validation.TaskValidator
}

// WithValidator sets the validator used for local draft checks.
func WithValidator(v *validation.TaskValidator) ControllerOption {
	return func(o *controllerOptions) {
		o.validator = v
	}
}

// NewController creates a Controller with an empty task list.
func NewController(boundary Boundary, confirm Confirmer, opts ...ControllerOption) *Controller {
	var o controllerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		effects: NewEffects(boundary, o.validator),
		confirm: confirm,
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state.Clone()
}

func (c *Controller) apply(ev Event) error {
	c.state = Reduce(c.state, ev)
	if failed, ok := ev.(Failed); ok {
		return failed.Err
	}
	return nil
}

// Refresh replaces the task list with the server's.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.apply(c.effects.Refresh(ctx))
}

// Create adds a task and appends the server's copy to the list.
func (c *Controller) Create(ctx context.Context, draft domain.Draft) error {
	return c.apply(c.effects.Create(ctx, draft))
}

// BeginEdit starts editing task, abandoning any unsaved draft.
func (c *Controller) BeginEdit(task domain.Task) {
	c.apply(EditBegun{Task: task})
}

// UpdateDraft replaces the draft being edited.
func (c *Controller) UpdateDraft(draft domain.Draft) error {
	ev := Event(DraftChanged{Draft: draft})
	if c.state.Editing == nil {
		ev = Failed{Op: OpEdit, Err: ErrNotEditing}
	}
	return c.apply(ev)
}

// CancelEdit discards the draft without contacting the server.
func (c *Controller) CancelEdit() {
	c.apply(EditCancelled{})
}

// SaveEdit submits the draft. On failure the session and draft are kept.
func (c *Controller) SaveEdit(ctx context.Context) error {
	if c.state.Editing == nil {
		return c.apply(Failed{Op: OpSave, Err: ErrNotEditing})
	}
	return c.apply(c.effects.Save(ctx, *c.State().Editing))
}

// Delete asks for confirmation and then removes the task. It reports whether
// a delete was attempted; a declined confirmation changes nothing.
func (c *Controller) Delete(ctx context.Context, id int64) (bool, error) {
	task, ok := c.state.Find(id)
	if !ok {
		task = domain.Task{ID: id}
	}
	if c.confirm == nil || !c.confirm.Confirm(task) {
		c.apply(DeleteDeclined{ID: id})
		return false, nil
	}
	return true, c.apply(c.effects.Delete(ctx, id))
}

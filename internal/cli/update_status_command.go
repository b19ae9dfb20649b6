package cli

import (
	"context"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// UpdateStatusCommand handles the update-status command. Updates replace
// every field, so the current name and description are sent back unchanged.
type UpdateStatusCommand struct {
	app          *App
	taskService  services.TaskService
	errorHandler *ErrorHandler
}

// NewUpdateStatusCommand creates a new update-status command handler
func NewUpdateStatusCommand(app *App) *UpdateStatusCommand {
	return &UpdateStatusCommand{
		app:          app,
		taskService:  app.services.TaskService,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the update-status command
func (c *UpdateStatusCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "update-status", "usage: todo update-status ID STATUS")
	}

	id, err := c.app.parseTaskID(args[0])
	if err != nil {
		return err
	}
	status, err := c.app.parseStatus(args[1])
	if err != nil {
		return c.errorHandler.Handle("update task", err)
	}

	task, err := c.taskService.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("update task", err)
	}

	updated, err := c.taskService.UpdateTask(ctx, id, task.Name, task.Description, &status)
	if err != nil {
		return c.errorHandler.Handle("update task", err)
	}

	c.app.printf("Task %d is now %s\n", updated.ID, updated.Status)
	return nil
}

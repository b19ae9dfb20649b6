package cli

import (
	"context"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	app          *App
	taskService  services.TaskService
	errorHandler *ErrorHandler

	// Yes skips the confirmation prompt.
	Yes bool
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		app:          app,
		taskService:  app.services.TaskService,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "remove", "usage: todo remove ID [--yes]")
	}

	id, err := c.app.parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := c.taskService.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("remove task", err)
	}

	if !c.Yes && !c.app.confirm.Confirm(*task) {
		c.app.println("Delete cancelled.")
		return nil
	}

	if _, err := c.taskService.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("remove task", err)
	}

	c.app.printf("Deleted task %d: %s\n", task.ID, task.Name)
	return nil
}


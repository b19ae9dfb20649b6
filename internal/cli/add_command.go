package cli

import (
	"context"
	"strings"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	taskService  services.TaskService
	errorHandler *ErrorHandler

	// Description is stored when set; nil leaves it absent.
	Description *string
	// Status defaults to pending when empty.
	Status string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		taskService:  app.services.TaskService,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", `usage: todo add "task name" [-d description] [-s status]`)
	}
	name := strings.Join(args, " ")

	var status *domain.Status
	if c.Status != "" {
		s, err := c.app.parseStatus(c.Status)
		if err != nil {
			return c.errorHandler.Handle("add task", err)
		}
		status = &s
	}

	task, err := c.taskService.CreateTask(ctx, name, c.Description, status)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.app.printf("Added task %d: %s [%s]\n", task.ID, task.Name, task.Status)
	return nil
}

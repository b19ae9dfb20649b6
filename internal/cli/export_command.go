package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"todo-tracker/internal/api"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	taskService  services.TaskService
	errorHandler *ErrorHandler

	// Format is used when no format argument is given.
	Format string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		app:          app,
		taskService:  app.services.TaskService,
		errorHandler: NewErrorHandler(),
		Format:       FormatCSV,
	}
}

// Execute runs the export command. An optional argument picks the format.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "export", "usage: todo export [csv|json|yaml]")
	}
	format := c.Format
	if len(args) == 1 {
		format = args[0]
	}

	var write func([]domain.Task) error
	switch format {
	case FormatCSV:
		write = c.writeCSV
	case FormatJSON:
		write = c.writeJSON
	case FormatYAML:
		write = c.writeYAML
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}

	tasks, err := c.taskService.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}
	return write(tasks)
}

// writeCSV writes one row per task. An absent description is an empty cell
// with has_description false, so it stays distinct from empty text.
func (c *ExportCommand) writeCSV(tasks []domain.Task) error {
	writer := csv.NewWriter(c.app.out)

	header := []string{"id", "task_name", "description", "has_description", "status", "date_added"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		resp := api.NewTaskResponse(task)
		row := []string{
			strconv.FormatInt(resp.ID, 10),
			resp.TaskName,
			task.DescriptionOr(""),
			strconv.FormatBool(task.Description != nil),
			resp.Status,
			resp.DateAdded,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (c *ExportCommand) writeJSON(tasks []domain.Task) error {
	enc := json.NewEncoder(c.app.out)
	enc.SetIndent("", "  ")
	return enc.Encode(api.NewTaskResponses(tasks))
}

func (c *ExportCommand) writeYAML(tasks []domain.Task) error {
	enc := yaml.NewEncoder(c.app.out)
	enc.SetIndent(2)
	if err := enc.Encode(api.NewTaskResponses(tasks)); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return enc.Close()
}

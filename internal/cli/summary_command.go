package cli

import (
	"context"
	"strings"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

const summaryWidth = 30

// SummaryCommand handles the summary command
type SummaryCommand struct {
	app          *App
	reporting    services.ReportingService
	errorHandler *ErrorHandler
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{
		app:          app,
		reporting:    app.services.ReportingService,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "summary", "usage: todo summary")
	}

	summary, err := c.reporting.Summarize(ctx)
	if err != nil {
		return c.errorHandler.Handle("summarize tasks", err)
	}

	c.app.println("Task summary")
	c.app.println(strings.Repeat("=", summaryWidth))
	for _, sc := range summary.ByStatus {
		c.app.printf("%-20s %9d\n", sc.Status, sc.Count)
	}
	c.app.println(strings.Repeat("-", summaryWidth))
	c.app.printf("%-20s %9d\n", "Total", summary.Total)
	return nil
}

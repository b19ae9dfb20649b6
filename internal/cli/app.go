package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"todo-tracker/internal/client"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
	"todo-tracker/internal/validation"
)

// App represents the main CLI application
type App struct {
	services services.ServiceContainer
	out      io.Writer
	in       io.Reader
	confirm   client.Confirmer
	validator *validation.TaskValidator
	registry  *CommandRegistry
}

// AppOption configures an App.
type AppOption func(*App)

// WithOutput sends command output to w instead of stdout.
func WithOutput(w io.Writer) AppOption {
	return func(a *App) {
		a.out = w
	}
}

// WithInput reads prompt answers from r instead of stdin.
func WithInput(r io.Reader) AppOption {
	return func(a *App) {
		a.in = r
	}
}

// WithConfirmer replaces the interactive delete prompt.
func WithConfirmer(c client.Confirmer) AppOption {
	return func(a *App) {
		a.confirm = c
	}
}

// WithTaskValidator sets the validator used to parse ids and statuses.
func WithTaskValidator(v *validation.TaskValidator) AppOption {
	return func(a *App) {
		a.validator = v
	}
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(container services.ServiceContainer, opts ...AppOption) *App {
	app := &App{
		services: container,
		out:      os.Stdout,
		in:       os.Stdin,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.confirm == nil {
		app.confirm = promptConfirmer(app.in, app.out)
	}
	if app.validator == nil {
		app.validator = validation.NewTaskValidator()
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	return a.registry.Execute(ctx, commandName, commandArgs)
}

// Command returns the registered command called name.
func (a *App) Command(name string) (Command, bool) {
	return a.registry.Lookup(name)
}

// parseTaskID reads a positive task id from a command argument.
func (a *App) parseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			return 0, errors.NewInvalidInputError("id", raw, "is out of range")
		}
		return 0, errors.NewInvalidInputError("id", raw, "must be an integer")
	}
	if err := a.validator.ValidateTaskID(id); err != nil {
		return 0, errors.NewValidationError("invalid task id", err)
	}
	return id, nil
}

// parseStatus reads a status from a command argument or flag.
func (a *App) parseStatus(raw string) (domain.Status, error) {
	status, err := a.validator.ValidateStatus(raw)
	if err != nil {
		return "", errors.NewValidationError("invalid status", err)
	}
	return status, nil
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// promptConfirmer asks on out and accepts "y" or "yes" from in.
func promptConfirmer(in io.Reader, out io.Writer) client.Confirmer {
	return client.ConfirmFunc(func(task domain.Task) bool {
		fmt.Fprintf(out, "Delete task %d %q? [y/N]: ", task.ID, task.Name)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}
